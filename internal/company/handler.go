package company

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/auth"
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

	views, err := ListCompanies(h.DB, locale)
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

	company, err := CreateCompany(h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, company, "Company created successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID", nil)
	}

	actor := auth.ActorFromCtx(c)
	// Company admins may only edit their own company.
	if actor.Role == models.RoleCompany {
		resolved, rerr := ResolveCompanyID(h.DB, actor)
		if rerr != nil {
			return response.FromError(c, rerr)
		}
		if resolved == nil || *resolved != uint(id) {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}
	}

	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	company, err := UpdateCompany(h.DB, uint(id), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, company, "Company updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID", nil)
	}

	if err := DeleteCompany(h.DB, uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}

func (h *Handler) DeleteTranslation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid company ID", nil)
	}

	locale := c.Params("locale")
	if !i18n.IsSupported(locale) {
		return response.BadRequest(c, "Unsupported locale", nil)
	}

	if err := DeleteTranslation(h.DB, uint(id), locale); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}
