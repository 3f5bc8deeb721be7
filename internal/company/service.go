package company

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
	Description     string         `json:"description,omitempty"`
	Address         string         `json:"address,omitempty"`
	Specializations datatypes.JSON `json:"specializations,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
}

type Input struct {
	Name            string             `json:"name"`
	Slug            string             `json:"slug,omitempty"`
	Description     string             `json:"description,omitempty"`
	Address         string             `json:"address,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	Email           string             `json:"email,omitempty"`
	LogoURL         string             `json:"logo_url,omitempty"`
	Specializations datatypes.JSON     `json:"specializations,omitempty"`
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
		if err := i18n.CheckJSON("specializations", tr.Specializations); err != nil {
			return err
		}
	}
	return nil
}

func validateInput(in Input) error {
	if err := i18n.CheckJSON("specializations", in.Specializations); err != nil {
		return err
	}
	return validateTranslations(in.Translations)
}

func CreateCompany(db *gorm.DB, in Input) (*models.Company, error) {
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

	company := &models.Company{
		Name:            in.Name,
		Description:     in.Description,
		Address:         in.Address,
		Phone:           in.Phone,
		Email:           in.Email,
		LogoURL:         in.LogoURL,
		Specializations: in.Specializations,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "companies"}, candidate, func(tx2 *gorm.DB, s string) error {
			company.Slug = s
			return tx2.Create(company).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, company, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return company, nil
}

func UpdateCompany(db *gorm.DB, id uint, in Input) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("company lookup", err)
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	if in.Name != "" {
		company.Name = in.Name
	}
	if in.Description != "" {
		company.Description = in.Description
	}
	if in.Address != "" {
		company.Address = in.Address
	}
	if in.Phone != "" {
		company.Phone = in.Phone
	}
	if in.Email != "" {
		company.Email = in.Email
	}
	if in.LogoURL != "" {
		company.LogoURL = in.LogoURL
	}
	if len(in.Specializations) > 0 {
		company.Specializations = in.Specializations
	}
	if in.MetaTitle != "" {
		company.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		company.MetaDescription = in.MetaDescription
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if in.Slug != "" && in.Slug != company.Slug {
			resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "companies", ExcludeID: company.ID}, in.Slug)
			if err != nil {
				return err
			}
			company.Slug = resolved
		}

		if err := tx.Save(&company).Error; err != nil {
			return apperr.Store("company update", err)
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, &company, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// upsertTranslation creates or updates the (company, locale) row. Unspecified
// locales are left untouched; translation rows are never required to exist.
func upsertTranslation(tx *gorm.DB, company *models.Company, in TranslationInput) error {
	var existing models.CompanyTranslation
	err := tx.Where("company_id = ? AND locale = ?", company.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("company translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Name, company.Name), in.Locale)
	}

	if !found {
		row := models.CompanyTranslation{
			CompanyID:       company.ID,
			Locale:          in.Locale,
			Name:            in.Name,
			Description:     in.Description,
			Address:         in.Address,
			Specializations: in.Specializations,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "company_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.Address != "" {
		existing.Address = in.Address
	}
	if len(in.Specializations) > 0 {
		existing.Specializations = in.Specializations
	}
	if in.MetaTitle != "" {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existing.MetaDescription = in.MetaDescription
	}

	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "company_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("company translation update", err)
	}
	return nil
}

func DeleteTranslation(db *gorm.DB, companyID uint, locale string) error {
	result := db.Where("company_id = ? AND locale = ?", companyID, locale).Delete(&models.CompanyTranslation{})
	if result.Error != nil {
		return apperr.Store("company translation delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// GetBySlug resolves a public company page: the slug is looked up in the
// requested locale's translation table first, then against base slugs.
func GetBySlug(db *gorm.DB, slugValue, locale string) (*CompanyView, error) {
	var tr models.CompanyTranslation
	err := db.Where("locale = ? AND slug = ?", locale, slugValue).First(&tr).Error
	if err == nil {
		var c models.Company
		if err := db.Preload("Translations").First(&c, tr.CompanyID).Error; err != nil {
			return nil, apperr.Store("company lookup", err)
		}
		view := Resolve(&c, &tr, locale)
		return &view, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Store("company translation lookup", err)
	}

	var c models.Company
	err = db.Preload("Translations").Where("slug = ?", slugValue).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store("company lookup", err)
	}

	view := Resolve(&c, TranslationFor(&c, locale), locale)
	return &view, nil
}

func ListCompanies(db *gorm.DB, locale string) ([]CompanyView, error) {
	var companies []models.Company
	if err := db.Preload("Translations").Order("name").Find(&companies).Error; err != nil {
		return nil, apperr.Store("company list", err)
	}

	views := make([]CompanyView, 0, len(companies))
	for i := range companies {
		views = append(views, Resolve(&companies[i], TranslationFor(&companies[i], locale), locale))
	}
	return views, nil
}

func DeleteCompany(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&models.CompanyTranslation{}).Error; err != nil {
			return apperr.Store("company translation delete", err)
		}
		result := tx.Delete(&models.Company{}, id)
		if result.Error != nil {
			return apperr.Store("company delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
