package server

import (
	"time"

	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/category"
	"github.com/legalge/platform/internal/company"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/post"
	"github.com/legalge/platform/internal/practice"
	"github.com/legalge/platform/internal/specialist"
	"github.com/legalge/platform/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	authHandler := auth.NewHandler(db)
	companyHandler := company.NewHandler(db)
	specialistHandler := specialist.NewHandler(db)
	categoryHandler := category.NewHandler(db)
	practiceHandler := practice.NewHandler(db)
	postHandler := post.NewHandler(db)
	userHandler := user.NewHandler(db)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Legal platform API is running",
		})
	})

	// ==========================================
	// AUTH ROUTES (No authentication required)
	// ==========================================
	authGroup := app.Group("/auth")
	app.Use("/auth", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	}))
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/refresh", limiter.New(limiter.Config{
		Max:        3,
		Expiration: 5 * time.Minute,
	}), authHandler.Refresh)
	authGroup.Post("/logout", auth.JWTProtected(), authHandler.Logout)

	// ==========================================
	// PUBLIC CONTENT (No authentication required)
	// ==========================================
	app.Get("/posts", postHandler.ListPublic)
	app.Get("/posts/:slug", postHandler.GetPublic)
	app.Get("/companies", companyHandler.List)
	app.Get("/companies/:slug", companyHandler.Get)
	app.Get("/specialists", specialistHandler.List)
	app.Get("/specialists/:slug", specialistHandler.Get)
	app.Get("/categories", categoryHandler.List)
	app.Get("/practice-areas", practiceHandler.ListAreas)
	app.Get("/practice-areas/:area_id/services", practiceHandler.ListServices)
	app.Get("/services", practiceHandler.ListAllServices)

	// ==========================================
	// CONTENT MANAGEMENT (Authenticated authors)
	// ==========================================
	manage := app.Group("/manage")
	manage.Use(auth.JWTProtected())
	manage.Use(auth.RoleProtected(models.RoleSuperAdmin, models.RoleCompany, models.RoleSpecialist))

	manage.Get("/posts", postHandler.ListManage)
	manage.Post("/posts", postHandler.Create)
	manage.Get("/posts/:id", postHandler.Get)
	manage.Put("/posts/:id", postHandler.Update)
	manage.Post("/posts/:id/publish", postHandler.Publish)
	manage.Delete("/posts/:id", postHandler.Delete)

	manage.Get("/categories", categoryHandler.ListManage)
	manage.Post("/categories", categoryHandler.Create)
	manage.Delete("/categories/:id", categoryHandler.Delete)

	// Company and specialist profile management
	manage.Post("/companies", auth.RoleProtected(models.RoleSuperAdmin), companyHandler.Create)
	manage.Put("/companies/:id", auth.RoleProtected(models.RoleSuperAdmin, models.RoleCompany), companyHandler.Update)
	manage.Delete("/companies/:id", auth.RoleProtected(models.RoleSuperAdmin), companyHandler.Delete)
	manage.Delete("/companies/:id/translations/:locale", auth.RoleProtected(models.RoleSuperAdmin), companyHandler.DeleteTranslation)

	manage.Post("/specialists", auth.RoleProtected(models.RoleSuperAdmin, models.RoleCompany), specialistHandler.Create)
	manage.Put("/specialists/:id", auth.RoleProtected(models.RoleSuperAdmin, models.RoleCompany), specialistHandler.Update)
	manage.Delete("/specialists/:id", auth.RoleProtected(models.RoleSuperAdmin), specialistHandler.Delete)

	manage.Post("/practice-areas", auth.RoleProtected(models.RoleSuperAdmin), practiceHandler.CreateArea)
	manage.Post("/services", auth.RoleProtected(models.RoleSuperAdmin), practiceHandler.CreateService)

	// ==========================================
	// USER MANAGEMENT (Super admin only)
	// ==========================================
	adminGroup := app.Group("/admin/users")
	adminGroup.Use(auth.JWTProtected())
	adminGroup.Use(auth.RoleProtected(models.RoleSuperAdmin))
	adminGroup.Get("/", userHandler.List)
	adminGroup.Get("/:id", userHandler.Get)
	adminGroup.Put("/:id", userHandler.Update)
	adminGroup.Delete("/:id", userHandler.Delete)
}
