package specialist

import (
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"gorm.io/datatypes"
)

type SpecialistView struct {
	ID              uint           `json:"id"`
	Locale          string         `json:"locale"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	Bio             string         `json:"bio"`
	CompanyID       *uint          `json:"company_id,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	PhotoURL        string         `json:"photo_url,omitempty"`
	FocusAreas      datatypes.JSON `json:"focus_areas,omitempty"`
	Credentials     datatypes.JSON `json:"credentials,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
}

// Resolve merges a base profile with its translation for the locale, if any.
// Contact email stays internal: the public view never carries it.
func Resolve(sp *models.SpecialistProfile, tr *models.SpecialistTranslation, locale string) SpecialistView {
	view := SpecialistView{
		ID:              sp.ID,
		Locale:          locale,
		Name:            sp.Name,
		Slug:            sp.Slug,
		Bio:             sp.Bio,
		CompanyID:       sp.CompanyID,
		Phone:           sp.Phone,
		PhotoURL:        sp.PhotoURL,
		FocusAreas:      sp.FocusAreas,
		Credentials:     sp.Credentials,
		MetaTitle:       sp.MetaTitle,
		MetaDescription: sp.MetaDescription,
	}
	if tr == nil {
		return view
	}

	view.Name = i18n.PickString(tr.Name, sp.Name)
	view.Slug = i18n.PickString(tr.Slug, sp.Slug)
	view.Bio = i18n.PickString(tr.Bio, sp.Bio)
	view.FocusAreas = i18n.PickJSON(tr.FocusAreas, sp.FocusAreas)
	view.Credentials = i18n.PickJSON(tr.Credentials, sp.Credentials)
	view.MetaTitle = i18n.PickString(tr.MetaTitle, sp.MetaTitle)
	view.MetaDescription = i18n.PickString(tr.MetaDescription, sp.MetaDescription)
	return view
}

func TranslationFor(sp *models.SpecialistProfile, locale string) *models.SpecialistTranslation {
	for i := range sp.Translations {
		if sp.Translations[i].Locale == locale {
			return &sp.Translations[i]
		}
	}
	return nil
}
