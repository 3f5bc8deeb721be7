package specialist

import (
	"errors"
	"strings"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TranslationInput struct {
	Locale          string         `json:"locale"`
	Name            string         `json:"name,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	Bio             string         `json:"bio,omitempty"`
	FocusAreas      datatypes.JSON `json:"focus_areas,omitempty"`
	Credentials     datatypes.JSON `json:"credentials,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
}

type Input struct {
	Name            string             `json:"name"`
	Slug            string             `json:"slug,omitempty"`
	Bio             string             `json:"bio,omitempty"`
	CompanyID       *uint              `json:"company_id,omitempty"`
	ContactEmail    string             `json:"contact_email,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	PhotoURL        string             `json:"photo_url,omitempty"`
	FocusAreas      datatypes.JSON     `json:"focus_areas,omitempty"`
	Credentials     datatypes.JSON     `json:"credentials,omitempty"`
	MetaTitle       string             `json:"meta_title,omitempty"`
	MetaDescription string             `json:"meta_description,omitempty"`
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
		if err := i18n.CheckJSON("focus_areas", tr.FocusAreas); err != nil {
			return err
		}
		if err := i18n.CheckJSON("credentials", tr.Credentials); err != nil {
			return err
		}
	}
	return nil
}

func validateInput(in Input) error {
	if err := i18n.CheckJSON("focus_areas", in.FocusAreas); err != nil {
		return err
	}
	if err := i18n.CheckJSON("credentials", in.Credentials); err != nil {
		return err
	}
	return validateTranslations(in.Translations)
}

func CreateSpecialist(db *gorm.DB, in Input) (*models.SpecialistProfile, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(in.Name, i18n.DefaultLocale())
	}
	if candidate == "" {
		return nil, apperr.Validation("slug", "slug cannot be derived from an empty name")
	}

	sp := &models.SpecialistProfile{
		Name:            in.Name,
		Bio:             in.Bio,
		CompanyID:       in.CompanyID,
		ContactEmail:    in.ContactEmail,
		Phone:           in.Phone,
		PhotoURL:        in.PhotoURL,
		FocusAreas:      in.FocusAreas,
		Credentials:     in.Credentials,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "specialist_profiles"}, candidate, func(tx2 *gorm.DB, s string) error {
			sp.Slug = s
			return tx2.Create(sp).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, sp, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sp, nil
}

func UpdateSpecialist(db *gorm.DB, id uint, in Input) (*models.SpecialistProfile, error) {
	var sp models.SpecialistProfile
	if err := db.First(&sp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("specialist lookup", err)
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	if in.Name != "" {
		sp.Name = in.Name
	}
	if in.Bio != "" {
		sp.Bio = in.Bio
	}
	if in.CompanyID != nil {
		sp.CompanyID = in.CompanyID
	}
	if in.ContactEmail != "" {
		sp.ContactEmail = in.ContactEmail
	}
	if in.Phone != "" {
		sp.Phone = in.Phone
	}
	if in.PhotoURL != "" {
		sp.PhotoURL = in.PhotoURL
	}
	if len(in.FocusAreas) > 0 {
		sp.FocusAreas = in.FocusAreas
	}
	if len(in.Credentials) > 0 {
		sp.Credentials = in.Credentials
	}
	if in.MetaTitle != "" {
		sp.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		sp.MetaDescription = in.MetaDescription
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if in.Slug != "" && in.Slug != sp.Slug {
			resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "specialist_profiles", ExcludeID: sp.ID}, in.Slug)
			if err != nil {
				return err
			}
			sp.Slug = resolved
		}

		if err := tx.Save(&sp).Error; err != nil {
			return apperr.Store("specialist update", err)
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, &sp, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sp, nil
}

func upsertTranslation(tx *gorm.DB, sp *models.SpecialistProfile, in TranslationInput) error {
	var existing models.SpecialistTranslation
	err := tx.Where("specialist_id = ? AND locale = ?", sp.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("specialist translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Name, sp.Name), in.Locale)
	}

	if !found {
		row := models.SpecialistTranslation{
			SpecialistID:    sp.ID,
			Locale:          in.Locale,
			Name:            in.Name,
			Bio:             in.Bio,
			FocusAreas:      in.FocusAreas,
			Credentials:     in.Credentials,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "specialist_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Bio != "" {
		existing.Bio = in.Bio
	}
	if len(in.FocusAreas) > 0 {
		existing.FocusAreas = in.FocusAreas
	}
	if len(in.Credentials) > 0 {
		existing.Credentials = in.Credentials
	}
	if in.MetaTitle != "" {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existing.MetaDescription = in.MetaDescription
	}

	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "specialist_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("specialist translation update", err)
	}
	return nil
}

func GetBySlug(db *gorm.DB, slugValue, locale string) (*SpecialistView, error) {
	var tr models.SpecialistTranslation
	err := db.Where("locale = ? AND slug = ?", locale, slugValue).First(&tr).Error
	if err == nil {
		var sp models.SpecialistProfile
		if err := db.Preload("Translations").First(&sp, tr.SpecialistID).Error; err != nil {
			return nil, apperr.Store("specialist lookup", err)
		}
		view := Resolve(&sp, &tr, locale)
		return &view, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Store("specialist translation lookup", err)
	}

	var sp models.SpecialistProfile
	err = db.Preload("Translations").Where("slug = ?", slugValue).First(&sp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store("specialist lookup", err)
	}

	view := Resolve(&sp, TranslationFor(&sp, locale), locale)
	return &view, nil
}

func ListSpecialists(db *gorm.DB, locale string, companyID *uint) ([]SpecialistView, error) {
	q := db.Preload("Translations").Order("name")
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}

	var specialists []models.SpecialistProfile
	if err := q.Find(&specialists).Error; err != nil {
		return nil, apperr.Store("specialist list", err)
	}

	views := make([]SpecialistView, 0, len(specialists))
	for i := range specialists {
		views = append(views, Resolve(&specialists[i], TranslationFor(&specialists[i], locale), locale))
	}
	return views, nil
}

func DeleteSpecialist(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("specialist_id = ?", id).Delete(&models.SpecialistTranslation{}).Error; err != nil {
			return apperr.Store("specialist translation delete", err)
		}
		result := tx.Delete(&models.SpecialistProfile{}, id)
		if result.Error != nil {
			return apperr.Store("specialist delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
