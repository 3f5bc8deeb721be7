package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/response"
	"github.com/legalge/platform/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		CompanySlug string `json:"company_slug"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"name":     "name is required",
			"email":    "email is required",
			"password": "password is required",
		})
	}

	role := models.UserRole(body.Role)
	if body.Role == "" {
		role = models.RoleSubscriber
	}
	// Self-service registration never grants the global admin role.
	if !role.Valid() || role == models.RoleSuperAdmin {
		return response.ValidationError(c, map[string]string{
			"role": "role must be one of COMPANY, SPECIALIST, SUBSCRIBER",
		})
	}

	var existing models.User
	if err := h.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email already registered")
	}

	u, err := RegisterUser(h.DB, body.Name, body.Email, body.Password, role, body.CompanySlug)
	if err != nil {
		return response.InternalError(c, "Failed to create user")
	}

	accessToken, _ := utils.GenerateJWT(u)
	refreshToken, _ := utils.GenerateRefreshToken(h.DB, u.ID)

	return response.Created(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          u,
	}, "Registration successful")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	accessToken, refreshToken, err := LoginUser(h.DB, body.Email, body.Password)
	if err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	return response.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    900,
	}, "Login successful")
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	var body struct {
		UserID       uint   `json:"user_id"`
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.UserID == 0 || body.RefreshToken == "" {
		return response.ValidationError(c, map[string]string{
			"user_id":       "user_id is required",
			"refresh_token": "refresh_token is required",
		})
	}

	accessToken, newRefreshToken, err := utils.RefreshTokenPair(h.DB, body.UserID, body.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return response.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"expires_in":    900,
	}, "Token refreshed successfully")
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	actor := ActorFromCtx(c)
	if actor.UserID == 0 {
		return response.Unauthorized(c, "User not authenticated")
	}

	log.Printf("User %d logged out", actor.UserID)

	return response.Success(c, fiber.Map{"user_id": actor.UserID}, "Logout successful")
}

func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" {
		return response.ValidationError(c, map[string]string{
			"email": "email is required",
		})
	}

	var user models.User
	if err := h.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		return response.Success(c, nil, "If account exists, reset link has been sent")
	}

	plainToken := uuid.NewString()
	reset := models.ResetToken{
		UserID:    user.ID,
		TokenHash: utils.HashToken(plainToken),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	if err := h.DB.Create(&reset).Error; err != nil {
		return response.InternalError(c, "Failed to save reset token")
	}

	// Mail delivery lives in a separate service; the token is only logged
	// here so local setups can complete the flow.
	log.Printf("password reset requested for user %d: %s", user.ID, fmt.Sprintf("/reset-password?token=%s", plainToken))

	return response.Success(c, nil, "If account exists, reset link has been sent")
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var body struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Token == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"token":        "token is required",
			"new_password": "new_password is required",
		})
	}

	var reset models.ResetToken
	if err := h.DB.Where("token_hash = ?", utils.HashToken(body.Token)).First(&reset).Error; err != nil {
		return response.BadRequest(c, "Invalid or expired token", nil)
	}

	if reset.ExpiresAt.Before(time.Now()) {
		h.DB.Delete(&reset)
		return response.BadRequest(c, "Token expired", nil)
	}

	var user models.User
	if err := h.DB.First(&user, reset.UserID).Error; err != nil {
		return response.NotFound(c, "User")
	}

	hashedPassword, _ := utils.HashPassword(body.NewPassword)
	user.Password = hashedPassword
	h.DB.Save(&user)
	h.DB.Delete(&reset)

	return response.Success(c, nil, "Password reset successful")
}
