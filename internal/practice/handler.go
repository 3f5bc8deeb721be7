package practice

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/response"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) ListAreas(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	views, err := ListAreas(h.DB, locale)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

func (h *Handler) ListServices(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	var areaID *uint
	if v, err := c.ParamsInt("area_id"); err == nil && v > 0 {
		id := uint(v)
		areaID = &id
	}

	views, err := ListServices(h.DB, locale, areaID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

func (h *Handler) ListAllServices(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	views, err := ListServices(h.DB, locale, nil)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, views, "")
}

func (h *Handler) CreateArea(c *fiber.Ctx) error {
	var body AreaInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	area, err := CreateArea(h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, area, "Practice area created successfully")
}

func (h *Handler) CreateService(c *fiber.Ctx) error {
	var body ServiceInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	svc, err := CreateService(h.DB, body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, svc, "Service created successfully")
}
