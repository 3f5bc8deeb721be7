package company

import (
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"gorm.io/datatypes"
)

// CompanyView is the effective, render-safe representation for one locale.
type CompanyView struct {
	ID              uint           `json:"id"`
	Locale          string         `json:"locale"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	LogoURL         string         `json:"logo_url,omitempty"`
	Specializations datatypes.JSON `json:"specializations,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
}

// Resolve merges a base company with its translation for the locale, if any.
func Resolve(c *models.Company, tr *models.CompanyTranslation, locale string) CompanyView {
	view := CompanyView{
		ID:              c.ID,
		Locale:          locale,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		LogoURL:         c.LogoURL,
		Specializations: c.Specializations,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
	}
	if tr == nil {
		return view
	}

	view.Name = i18n.PickString(tr.Name, c.Name)
	view.Slug = i18n.PickString(tr.Slug, c.Slug)
	view.Description = i18n.PickString(tr.Description, c.Description)
	view.Address = i18n.PickString(tr.Address, c.Address)
	view.Specializations = i18n.PickJSON(tr.Specializations, c.Specializations)
	view.MetaTitle = i18n.PickString(tr.MetaTitle, c.MetaTitle)
	view.MetaDescription = i18n.PickString(tr.MetaDescription, c.MetaDescription)
	return view
}

// TranslationFor picks the loaded translation row for a locale, nil when the
// locale has none.
func TranslationFor(c *models.Company, locale string) *models.CompanyTranslation {
	for i := range c.Translations {
		if c.Translations[i].Locale == locale {
			return &c.Translations[i]
		}
	}
	return nil
}
