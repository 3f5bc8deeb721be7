package user

import (
	"github.com/gofiber/fiber/v2"
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
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := ListUsers(h.DB, models.UserRole(c.Query("role")), c.Query("search"), page, limit)
	if err != nil {
		return response.FromError(c, err)
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, users, meta, "")
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	u, err := GetUser(h.DB, uint(id))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, u, "")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var body UpdateInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	u, err := UpdateUser(h.DB, uint(id), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, u, "User updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	if err := DeleteUser(h.DB, uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}
