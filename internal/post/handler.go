package post

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/auth"
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

func listParamsFromQuery(c *fiber.Ctx) ListParams {
	return ListParams{
		Locale:   i18n.Normalize(c.Query("locale")),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}
}

// ListPublic serves the public feed: published posts in the requested locale.
func (h *Handler) ListPublic(c *fiber.Ctx) error {
	params := listParamsFromQuery(c)
	params.Scope = ScopePublic

	posts, total, err := ListPosts(h.DB, auth.Actor{}, params)
	if err != nil {
		return response.FromError(c, err)
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		views = append(views, Resolve(p, TranslationFor(p, params.Locale), params.Locale))
	}

	meta := response.CalculateMeta(params.Page, params.Limit, total)
	return response.SuccessWithMeta(c, views, meta, "")
}

func (h *Handler) GetPublic(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale"))

	view, err := GetPublicBySlug(h.DB, c.Params("slug"), locale)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, view, "")
}

// ListManage serves the authenticated dashboards. The scope parameter picks
// the visibility rule; each rule enforces its own role requirements.
func (h *Handler) ListManage(c *fiber.Ctx) error {
	actor := auth.ActorFromCtx(c)

	params := listParamsFromQuery(c)
	switch Scope(c.Query("scope")) {
	case ScopeSpecialist:
		params.Scope = ScopeSpecialist
	case ScopeCompany:
		params.Scope = ScopeCompany
	case ScopeAdmin:
		params.Scope = ScopeAdmin
	default:
		return response.BadRequest(c, "Unknown scope", nil)
	}

	posts, total, err := ListPosts(h.DB, actor, params)
	if err != nil {
		return response.FromError(c, err)
	}

	meta := response.CalculateMeta(params.Page, params.Limit, total)
	return response.SuccessWithMeta(c, posts, meta, "")
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	p, err := GetManagePost(h.DB, auth.ActorFromCtx(c), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, p, "")
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	p, err := CreatePost(h.DB, auth.ActorFromCtx(c), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, p, "Post created successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	var body Input
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	p, err := UpdatePost(h.DB, auth.ActorFromCtx(c), uint(id), body)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, p, "Post updated successfully")
}

func (h *Handler) Publish(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	p, err := PublishPost(h.DB, auth.ActorFromCtx(c), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, p, "Post published successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid post ID", nil)
	}

	if err := DeletePost(h.DB, auth.ActorFromCtx(c), uint(id)); err != nil {
		return response.FromError(c, err)
	}
	return response.NoContent(c)
}
