package practice

import (
	"errors"
	"strings"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/i18n"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/slug"
	"gorm.io/gorm"
)

type TranslationInput struct {
	Locale          string `json:"locale"`
	Title           string `json:"title,omitempty"`
	Slug            string `json:"slug,omitempty"`
	Description     string `json:"description,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

type AreaInput struct {
	Title           string             `json:"title"`
	Slug            string             `json:"slug,omitempty"`
	Description     string             `json:"description,omitempty"`
	IconURL         string             `json:"icon_url,omitempty"`
	MetaTitle       string             `json:"meta_title,omitempty"`
	MetaDescription string             `json:"meta_description,omitempty"`
	Translations    []TranslationInput `json:"translations,omitempty"`
}

type ServiceInput struct {
	Title           string             `json:"title"`
	Slug            string             `json:"slug,omitempty"`
	Description     string             `json:"description,omitempty"`
	PracticeAreaID  *uint              `json:"practice_area_id,omitempty"`
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
	}
	return nil
}

func CreateArea(db *gorm.DB, in AreaInput) (*models.PracticeArea, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if err := validateTranslations(in.Translations); err != nil {
		return nil, err
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(in.Title, i18n.DefaultLocale())
	}
	if candidate == "" {
		return nil, apperr.Validation("slug", "slug cannot be derived from an empty title")
	}

	area := &models.PracticeArea{
		Title:           in.Title,
		Description:     in.Description,
		IconURL:         in.IconURL,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "practice_areas"}, candidate, func(tx2 *gorm.DB, s string) error {
			area.Slug = s
			return tx2.Create(area).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertAreaTranslation(tx, area, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return area, nil
}

func upsertAreaTranslation(tx *gorm.DB, area *models.PracticeArea, in TranslationInput) error {
	var existing models.PracticeAreaTranslation
	err := tx.Where("practice_area_id = ? AND locale = ?", area.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("practice area translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Title, area.Title), in.Locale)
	}

	if !found {
		row := models.PracticeAreaTranslation{
			PracticeAreaID:  area.ID,
			Locale:          in.Locale,
			Title:           in.Title,
			Description:     in.Description,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "practice_area_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.MetaTitle != "" {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existing.MetaDescription = in.MetaDescription
	}
	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "practice_area_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("practice area translation update", err)
	}
	return nil
}

func CreateService(db *gorm.DB, in ServiceInput) (*models.LegalService, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if err := validateTranslations(in.Translations); err != nil {
		return nil, err
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(in.Title, i18n.DefaultLocale())
	}
	if candidate == "" {
		return nil, apperr.Validation("slug", "slug cannot be derived from an empty title")
	}

	svc := &models.LegalService{
		Title:           in.Title,
		Description:     in.Description,
		PracticeAreaID:  in.PracticeAreaID,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "legal_services"}, candidate, func(tx2 *gorm.DB, s string) error {
			svc.Slug = s
			return tx2.Create(svc).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertServiceTranslation(tx, svc, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func upsertServiceTranslation(tx *gorm.DB, svc *models.LegalService, in TranslationInput) error {
	var existing models.LegalServiceTranslation
	err := tx.Where("service_id = ? AND locale = ?", svc.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("service translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Title, svc.Title), in.Locale)
	}

	if !found {
		row := models.LegalServiceTranslation{
			ServiceID:       svc.ID,
			Locale:          in.Locale,
			Title:           in.Title,
			Description:     in.Description,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "legal_service_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.MetaTitle != "" {
		existing.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		existing.MetaDescription = in.MetaDescription
	}
	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "legal_service_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("service translation update", err)
	}
	return nil
}

type AreaView struct {
	ID              uint   `json:"id"`
	Locale          string `json:"locale"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	IconURL         string `json:"icon_url,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

type ServiceView struct {
	ID              uint   `json:"id"`
	Locale          string `json:"locale"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	PracticeAreaID  *uint  `json:"practice_area_id,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

func resolveArea(a *models.PracticeArea, tr *models.PracticeAreaTranslation, locale string) AreaView {
	view := AreaView{
		ID:              a.ID,
		Locale:          locale,
		Title:           a.Title,
		Slug:            a.Slug,
		Description:     a.Description,
		IconURL:         a.IconURL,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
	}
	if tr != nil {
		view.Title = i18n.PickString(tr.Title, a.Title)
		view.Slug = i18n.PickString(tr.Slug, a.Slug)
		view.Description = i18n.PickString(tr.Description, a.Description)
		view.MetaTitle = i18n.PickString(tr.MetaTitle, a.MetaTitle)
		view.MetaDescription = i18n.PickString(tr.MetaDescription, a.MetaDescription)
	}
	return view
}

func resolveService(s *models.LegalService, tr *models.LegalServiceTranslation, locale string) ServiceView {
	view := ServiceView{
		ID:              s.ID,
		Locale:          locale,
		Title:           s.Title,
		Slug:            s.Slug,
		Description:     s.Description,
		PracticeAreaID:  s.PracticeAreaID,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
	}
	if tr != nil {
		view.Title = i18n.PickString(tr.Title, s.Title)
		view.Slug = i18n.PickString(tr.Slug, s.Slug)
		view.Description = i18n.PickString(tr.Description, s.Description)
		view.MetaTitle = i18n.PickString(tr.MetaTitle, s.MetaTitle)
		view.MetaDescription = i18n.PickString(tr.MetaDescription, s.MetaDescription)
	}
	return view
}

func ListAreas(db *gorm.DB, locale string) ([]AreaView, error) {
	var areas []models.PracticeArea
	if err := db.Preload("Translations").Order("title").Find(&areas).Error; err != nil {
		return nil, apperr.Store("practice area list", err)
	}

	views := make([]AreaView, 0, len(areas))
	for i := range areas {
		var tr *models.PracticeAreaTranslation
		for j := range areas[i].Translations {
			if areas[i].Translations[j].Locale == locale {
				tr = &areas[i].Translations[j]
				break
			}
		}
		views = append(views, resolveArea(&areas[i], tr, locale))
	}
	return views, nil
}

func ListServices(db *gorm.DB, locale string, practiceAreaID *uint) ([]ServiceView, error) {
	q := db.Preload("Translations").Order("title")
	if practiceAreaID != nil {
		q = q.Where("practice_area_id = ?", *practiceAreaID)
	}

	var services []models.LegalService
	if err := q.Find(&services).Error; err != nil {
		return nil, apperr.Store("service list", err)
	}

	views := make([]ServiceView, 0, len(services))
	for i := range services {
		var tr *models.LegalServiceTranslation
		for j := range services[i].Translations {
			if services[i].Translations[j].Locale == locale {
				tr = &services[i].Translations[j]
				break
			}
		}
		views = append(views, resolveService(&services[i], tr, locale))
	}
	return views, nil
}
