package specialist

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

	var companyID *uint
	if slugValue := c.Query("company"); slugValue != "" {
		var comp models.Company
		if err := h.DB.Where("slug = ?", slugValue).First(&comp).Error; err != nil {
			return response.NotFound(c, "Company")
		}
		companyID = &comp.ID
	}

	views, err := ListSpecialists(h.DB, locale, companyID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

func (h *Handler) Get(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	view, err := GetBySlug(h.DB, c.Params("slug"), locale)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, view, "")
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	actor := auth.ActorFromCtx(c)
	// A company admin creates profiles under their own company only.
	if actor.Role == models.RoleCompany {
		resolved, err := company.ResolveCompanyID(h.DB, actor)
		if err != nil {
			return response.FromError(c, err)
		}
		if resolved == nil {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
		body.CompanyID = resolved
	}

	sp, err := CreateSpecialist(h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, sp, "Specialist created successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid specialist ID", nil)
	}

	actor := auth.ActorFromCtx(c)
	if actor.Role == models.RoleCompany {
		var sp models.SpecialistProfile
		if err := h.DB.First(&sp, id).Error; err != nil {
			return response.NotFound(c, "Specialist")
		}
		resolved, rerr := company.ResolveCompanyID(h.DB, actor)
		if rerr != nil {
			return response.FromError(c, rerr)
		}
		if resolved == nil || sp.CompanyID == nil || *sp.CompanyID != *resolved {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
	}

	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	sp, err := UpdateSpecialist(h.DB, uint(id), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, sp, "Specialist updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid specialist ID", nil)
	}

	if err := DeleteSpecialist(h.DB, uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}
