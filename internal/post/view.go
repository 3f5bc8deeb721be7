package post

import (
	"time"

	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
)

// PostView is the effective, render-safe representation for one locale. The
// cover URL is structural and always comes from the base row; its alt text is
// translatable.
type PostView struct {
	ID              uint              `json:"id"`
	Locale          string            `json:"locale"`
	Status          models.PostStatus `json:"status"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         string            `json:"excerpt"`
	Body            string            `json:"body"`
	CoverURL        string            `json:"cover_url,omitempty"`
	CoverAlt        string            `json:"cover_alt,omitempty"`
	MetaTitle       string            `json:"meta_title,omitempty"`
	MetaDescription string            `json:"meta_description,omitempty"`
	CategoryID      *uint             `json:"category_id,omitempty"`
	CompanyID       *uint             `json:"company_id,omitempty"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
}

func Resolve(p *models.Post, tr *models.PostTranslation, locale string) PostView {
	view := PostView{
		ID:              p.ID,
		Locale:          locale,
		Status:          p.Status,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Body:            p.Body,
		CoverURL:        p.CoverURL,
		CoverAlt:        p.CoverAlt,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		CategoryID:      p.CategoryID,
		CompanyID:       p.CompanyID,
		PublishedAt:     p.PublishedAt,
	}
	if tr == nil {
		return view
	}

	view.Title = i18n.PickString(tr.Title, p.Title)
	view.Slug = i18n.PickString(tr.Slug, p.Slug)
	view.Excerpt = i18n.PickString(tr.Excerpt, p.Excerpt)
	view.Body = i18n.PickString(tr.Body, p.Body)
	view.CoverAlt = i18n.PickString(tr.CoverAlt, p.CoverAlt)
	view.MetaTitle = i18n.PickString(tr.MetaTitle, p.MetaTitle)
	view.MetaDescription = i18n.PickString(tr.MetaDescription, p.MetaDescription)
	return view
}

func TranslationFor(p *models.Post, locale string) *models.PostTranslation {
	for i := range p.Translations {
		if p.Translations[i].Locale == locale {
			return &p.Translations[i]
		}
	}
	return nil
}
