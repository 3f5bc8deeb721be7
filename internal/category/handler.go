package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/company"
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/response"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) List(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	views, err := ListCategories(h.DB, locale, nil)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

// ListManage includes the caller's company-scoped categories alongside the
// global ones.
func (h *Handler) ListManage(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))
	actor := auth.ActorFromCtx(c)

	companyID, err := company.ResolveCompanyID(h.DB, actor)
	if err != nil {
		return response.FromError(c, err)
	}

	views, err := ListCategories(h.DB, locale, companyID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	actor := auth.ActorFromCtx(c)
	// Company admins create COMPANY categories under their own company;
	// only super-admins create global ones.
	if actor.Role == models.RoleCompany {
		resolved, err := company.ResolveCompanyID(h.DB, actor)
		if err != nil {
			return response.FromError(c, err)
		}
		if resolved == nil {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
		body.Type = string(models.CategoryCompany)
		body.CompanyID = resolved
	}

	cat, err := CreateCategory(h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, cat, "Category created successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	actor := auth.ActorFromCtx(c)
	if actor.Role == models.RoleCompany {
		var cat models.Category
		if err := h.DB.First(&cat, id).Error; err != nil {
			return response.NotFound(c, "Category")
		}
		resolved, rerr := company.ResolveCompanyID(h.DB, actor)
		if rerr != nil {
			return response.FromError(c, rerr)
		}
		if cat.CompanyID == nil || resolved == nil || *cat.CompanyID != *resolved {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
	}

	if err := DeleteCategory(h.DB, uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}
