package company

import (
	"errors"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/models"
	"gorm.io/gorm"
)

// ResolveCompanyID resolves the acting user's effective company through the
// ordered fallback chain: session-claimed id, stored user record, then
// company slug (session first, stored second). First success wins, so a
// session value shadows a stale database one. A nil result is the legitimate
// solo-practitioner state, not a failure.
func ResolveCompanyID(db *gorm.DB, actor auth.Actor) (*uint, error) {
	if actor.CompanyID != nil {
		return actor.CompanyID, nil
	}

	slug := actor.CompanySlug

	var user models.User
	err := db.First(&user, actor.UserID).Error
	switch {
	case err == nil:
		if user.CompanyID != nil {
			return user.CompanyID, nil
		}
		if slug == "" {
			slug = user.CompanySlug
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Keep going: the session slug may still resolve.
	default:
		return nil, apperr.Store("company affiliation lookup", err)
	}

	if slug != "" {
		var c models.Company
		err := db.Where("slug = ?", slug).First(&c).Error
		switch {
		case err == nil:
			id := c.ID
			return &id, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Dangling slug: treat as no affiliation.
		default:
			return nil, apperr.Store("company slug lookup", err)
		}
	}

	return nil, nil
}
