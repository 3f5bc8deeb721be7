package post

import (
	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/models"
	"gorm.io/gorm"
)

type Scope string

const (
	ScopePublic     Scope = "public"
	ScopeSpecialist Scope = "specialist"
	ScopeCompany    Scope = "company"
	ScopeAdmin      Scope = "admin"
)

type ListParams struct {
	Scope    Scope
	Locale   string
	Status   string
	Category string
	Search   string
	Page     int
	Limit    int
}

// BuildListQuery composes the visibility filter for a post listing. The
// company scope is a union: a post is visible if it is attached to the
// resolved company directly, through its author's company, through a legacy
// specialist matched by the author's email, or simply authored by the caller.
// One path suffices.
func BuildListQuery(db *gorm.DB, actor auth.Actor, resolvedCompany *uint, p ListParams) (*gorm.DB, error) {
	q := db.Model(&models.Post{})

	switch p.Scope {
	case ScopePublic:
		q = q.Where("posts.status = ?", models.StatusPublished).
			Where("posts.locale = ?", p.Locale)

	case ScopeSpecialist:
		if actor.Role != models.RoleSpecialist {
			return nil, apperr.ErrForbidden
		}
		q = q.Where("posts.author_id = ?", actor.UserID)
		if p.Status != "" {
			q = q.Where("posts.status = ?", p.Status)
		}

	case ScopeCompany:
		if actor.Role != models.RoleCompany && actor.Role != models.RoleSuperAdmin {
			return nil, apperr.ErrForbidden
		}
		if actor.Role == models.RoleCompany {
			if resolvedCompany == nil {
				// No company resolved: the caller still sees their own posts.
				q = q.Where("posts.author_id = ?", actor.UserID)
			} else {
				cid := *resolvedCompany
				companyEmails := db.Model(&models.SpecialistProfile{}).
					Select("contact_email").
					Where("company_id = ?", cid)

				q = q.Joins("LEFT JOIN users ON users.id = posts.author_id").
					Where(db.Where("posts.company_id = ?", cid).
						Or("users.company_id = ?", cid).
						Or("users.email IN (?)", companyEmails).
						Or("posts.author_id = ?", actor.UserID))
			}
		}
		if p.Status != "" {
			q = q.Where("posts.status = ?", p.Status)
		}

	case ScopeAdmin:
		if actor.Role != models.RoleSuperAdmin {
			return nil, apperr.ErrForbidden
		}
		if p.Status != "" {
			q = q.Where("posts.status = ?", p.Status)
		}

	default:
		return nil, apperr.Validation("scope", "unknown scope")
	}

	if p.Category != "" {
		categoryIDs := db.Model(&models.Category{}).
			Select("id").
			Where("slug = ?", p.Category)
		q = q.Where("posts.category_id IN (?)", categoryIDs)
	}

	if p.Search != "" {
		// Matching follows the store's default string comparison; no case
		// folding is applied here.
		pattern := "%" + p.Search + "%"
		q = q.Where(db.Where("posts.title LIKE ?", pattern).
			Or("posts.excerpt LIKE ?", pattern).
			Or("posts.body LIKE ?", pattern))
	}

	return q, nil
}
