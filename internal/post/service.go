package post

import (
	"errors"
	"strings"
	"time"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/category"
	"github.com/legalge/platform/internal/company"
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/slug"
	"gorm.io/gorm"
)

type TranslationInput struct {
	Locale          string `json:"locale"`
	Title           string `json:"title,omitempty"`
	Slug            string `json:"slug,omitempty"`
	Excerpt         string `json:"excerpt,omitempty"`
	Body            string `json:"body,omitempty"`
	CoverAlt        string `json:"cover_alt,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

type Input struct {
	Title           string             `json:"title"`
	Slug            string             `json:"slug,omitempty"`
	Excerpt         string             `json:"excerpt,omitempty"`
	Body            string             `json:"body,omitempty"`
	Locale          string             `json:"locale,omitempty"`
	CoverURL        string             `json:"cover_url,omitempty"`
	CoverAlt        string             `json:"cover_alt,omitempty"`
	MetaTitle       string             `json:"meta_title,omitempty"`
	MetaDescription string             `json:"meta_description,omitempty"`
	CategoryID      *uint              `json:"category_id,omitempty"`
	Translations    []TranslationInput `json:"translations,omitempty"`
}

func validateTranslations(trs []TranslationInput) error {
	seen := map[string]bool{}
	for _, tr := range trs {
		if !i18n.IsSupported(tr.Locale) {
			return apperr.Validation("translations", "unsupported locale "+tr.Locale)
		}
		if seen[tr.Locale] {
			return apperr.Validation("translations", "duplicate locale "+tr.Locale)
		}
		seen[tr.Locale] = true
	}
	return nil
}

func authorTypeFor(role models.UserRole) models.AuthorType {
	switch role {
	case models.RoleSuperAdmin:
		return models.AuthorSuperAdmin
	case models.RoleCompany:
		return models.AuthorCompany
	default:
		return models.AuthorSpecialist
	}
}

// CreatePost runs the full write path: validate, resolve affiliation, check
// the category, derive slugs, then commit the post and its translations in
// one transaction. Nothing is written when any step fails.
func CreatePost(db *gorm.DB, actor auth.Actor, in Input) (*models.Post, error) {
	if !actor.HasRole(models.RoleSuperAdmin, models.RoleCompany, models.RoleSpecialist) {
		return nil, apperr.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if err := validateTranslations(in.Translations); err != nil {
		return nil, err
	}

	locale := i18n.Normalize(in.Locale)

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(in.Title, locale)
	}
	if candidate == "" {
		return nil, apperr.Validation("slug", "slug cannot be derived from an empty title")
	}

	resolvedCompany, err := company.ResolveCompanyID(db, actor)
	if err != nil {
		return nil, err
	}

	authorID := actor.UserID
	p := &models.Post{
		Status:          models.StatusDraft,
		Locale:          locale,
		Title:           in.Title,
		Excerpt:         sanitizeText(in.Excerpt),
		Body:            sanitizeBody(in.Body),
		CoverURL:        in.CoverURL,
		CoverAlt:        in.CoverAlt,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		AuthorType:      authorTypeFor(actor.Role),
		AuthorID:        &authorID,
		CompanyID:       resolvedCompany,
		CategoryID:      in.CategoryID,
	}

	if in.CategoryID != nil {
		if _, err := category.CheckAttachable(db, *in.CategoryID, EffectiveCompany(p, resolvedCompany)); err != nil {
			return nil, err
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "posts"}, candidate, func(tx2 *gorm.DB, s string) error {
			p.Slug = s
			return tx2.Create(p).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, p, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// UpdatePost applies a partial update after the authorization gate passes.
// Adoption of an orphaned post happens here, as part of the same write.
func UpdatePost(db *gorm.DB, actor auth.Actor, id uint, in Input) (*models.Post, error) {
	var p models.Post
	if err := db.Preload("Translations").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("post lookup", err)
	}

	resolvedCompany, err := company.ResolveCompanyID(db, actor)
	if err != nil {
		return nil, err
	}

	decision := Authorize(actor, resolvedCompany, &p)
	if !decision.Allowed {
		return nil, apperr.ErrForbidden
	}

	if err := validateTranslations(in.Translations); err != nil {
		return nil, err
	}

	if decision.Adopt {
		p.Claim(actor.UserID)
		p.AuthorType = authorTypeFor(actor.Role)
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Excerpt != "" {
		p.Excerpt = sanitizeText(in.Excerpt)
	}
	if in.Body != "" {
		p.Body = sanitizeBody(in.Body)
	}
	if in.Locale != "" {
		p.Locale = i18n.Normalize(in.Locale)
	}
	if in.CoverURL != "" {
		p.CoverURL = in.CoverURL
	}
	if in.CoverAlt != "" {
		p.CoverAlt = in.CoverAlt
	}
	if in.MetaTitle != "" {
		p.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		p.MetaDescription = in.MetaDescription
	}

	if in.CategoryID != nil {
		if _, err := category.CheckAttachable(db, *in.CategoryID, EffectiveCompany(&p, resolvedCompany)); err != nil {
			return nil, err
		}
		p.CategoryID = in.CategoryID
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if in.Slug != "" && in.Slug != p.Slug {
			resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "posts", ExcludeID: p.ID}, in.Slug)
			if err != nil {
				return err
			}
			p.Slug = resolved
		}

		if err := tx.Save(&p).Error; err != nil {
			return apperr.Store("post update", err)
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, &p, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// upsertTranslation creates or updates the (post, locale) row. Locales absent
// from the payload are not touched.
func upsertTranslation(tx *gorm.DB, p *models.Post, in TranslationInput) error {
	var existing models.PostTranslation
	err := tx.Where("post_id = ? AND locale = ?", p.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("post translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Title, p.Title), in.Locale)
	}

	if !found {
		row := models.PostTranslation{
			PostID:          p.ID,
			Locale:          in.Locale,
			Title:           in.Title,
			Excerpt:         sanitizeText(in.Excerpt),
			Body:            sanitizeBody(in.Body),
			CoverAlt:        in.CoverAlt,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "post_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Excerpt != "" {
		existing.Excerpt = sanitizeText(in.Excerpt)
	}
	if in.Body != "" {
		existing.Body = sanitizeBody(in.Body)
	}
	if in.CoverAlt != "" {
		existing.CoverAlt = in.CoverAlt
	}
	if in.MetaTitle != "" {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existing.MetaDescription = in.MetaDescription
	}

	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "post_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("post translation update", err)
	}
	return nil
}

// PublishPost moves a draft to published. PublishedAt is stamped on the first
// transition only and survives republishing.
func PublishPost(db *gorm.DB, actor auth.Actor, id uint) (*models.Post, error) {
	var p models.Post
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("post lookup", err)
	}

	resolvedCompany, err := company.ResolveCompanyID(db, actor)
	if err != nil {
		return nil, err
	}

	decision := Authorize(actor, resolvedCompany, &p)
	if !decision.Allowed {
		return nil, apperr.ErrForbidden
	}
	if decision.Adopt {
		p.Claim(actor.UserID)
		p.AuthorType = authorTypeFor(actor.Role)
	}

	p.Status = models.StatusPublished
	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := db.Save(&p).Error; err != nil {
		return nil, apperr.Store("post publish", err)
	}
	return &p, nil
}

func DeletePost(db *gorm.DB, actor auth.Actor, id uint) error {
	var p models.Post
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Store("post lookup", err)
	}

	resolvedCompany, err := company.ResolveCompanyID(db, actor)
	if err != nil {
		return err
	}

	if !Authorize(actor, resolvedCompany, &p).Allowed {
		return apperr.ErrForbidden
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&models.PostTranslation{}).Error; err != nil {
			return apperr.Store("post translation delete", err)
		}
		if err := tx.Delete(&p).Error; err != nil {
			return apperr.Store("post delete", err)
		}
		return nil
	})
}

// GetManagePost loads a post with all translations for editing. Unauthorized
// callers get not-found, not forbidden, so existence is not leaked.
func GetManagePost(db *gorm.DB, actor auth.Actor, id uint) (*models.Post, error) {
	var p models.Post
	if err := db.Preload("Translations").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("post lookup", err)
	}

	resolvedCompany, err := company.ResolveCompanyID(db, actor)
	if err != nil {
		return nil, err
	}

	if !Authorize(actor, resolvedCompany, &p).Allowed {
		return nil, apperr.ErrNotFound
	}
	return &p, nil
}

// GetPublicBySlug resolves a public post page. The slug is looked up in the
// requested locale's translation rows first, then against base slugs. Drafts
// are invisible here.
func GetPublicBySlug(db *gorm.DB, slugValue, locale string) (*PostView, error) {
	var tr models.PostTranslation
	err := db.Where("locale = ? AND slug = ?", locale, slugValue).First(&tr).Error
	if err == nil {
		var p models.Post
		if err := db.Preload("Translations").First(&p, tr.PostID).Error; err != nil {
			return nil, apperr.Store("post lookup", err)
		}
		if p.Status != models.StatusPublished {
			return nil, apperr.ErrNotFound
		}
		view := Resolve(&p, &tr, locale)
		return &view, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Store("post translation lookup", err)
	}

	var p models.Post
	err = db.Preload("Translations").Where("slug = ?", slugValue).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store("post lookup", err)
	}
	if p.Status != models.StatusPublished {
		return nil, apperr.ErrNotFound
	}

	view := Resolve(&p, TranslationFor(&p, locale), locale)
	return &view, nil
}

// ListPosts executes the visibility query with pagination.
func ListPosts(db *gorm.DB, actor auth.Actor, p ListParams) ([]models.Post, int64, error) {
	var resolvedCompany *uint
	if p.Scope != ScopePublic {
		var err error
		resolvedCompany, err = company.ResolveCompanyID(db, actor)
		if err != nil {
			return nil, 0, err
		}
	}

	q, err := BuildListQuery(db, actor, resolvedCompany, p)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("post count", err)
	}

	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	var posts []models.Post
	err = q.Preload("Translations").
		Order("posts.created_at DESC").
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, apperr.Store("post list", err)
	}

	return posts, total, nil
}
