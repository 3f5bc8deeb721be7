package category

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
	Locale string `json:"locale"`
	Name   string `json:"name,omitempty"`
	Slug   string `json:"slug,omitempty"`
}

type Input struct {
	Name         string             `json:"name"`
	Slug         string             `json:"slug,omitempty"`
	Type         string             `json:"type,omitempty"`
	CompanyID    *uint              `json:"company_id,omitempty"`
	Translations []TranslationInput `json:"translations,omitempty"`
}

func CreateCategory(db *gorm.DB, in Input) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	catType := models.CategoryType(in.Type)
	if in.Type == "" {
		catType = models.CategoryGlobal
	}
	switch catType {
	case models.CategoryGlobal:
		in.CompanyID = nil
	case models.CategoryCompany:
		if in.CompanyID == nil {
			return nil, apperr.Validation("company_id", "company-scoped categories require a company")
		}
	default:
		return nil, apperr.Validation("type", "type must be GLOBAL or COMPANY")
	}

	for _, tr := range in.Translations {
		if !i18n.IsSupported(tr.Locale) {
			return nil, apperr.Validation("translations", "unsupported locale "+tr.Locale)
		}
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(in.Name, i18n.DefaultLocale())
	}
	if candidate == "" {
		return nil, apperr.Validation("slug", "slug cannot be derived from an empty name")
	}

	cat := &models.Category{
		Name:      in.Name,
		Type:      catType,
		CompanyID: in.CompanyID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "categories"}, candidate, func(tx2 *gorm.DB, s string) error {
			cat.Slug = s
			return tx2.Create(cat).Error
		})
		if err != nil {
			return err
		}

		for _, tr := range in.Translations {
			if err := upsertTranslation(tx, cat, tr); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

func upsertTranslation(tx *gorm.DB, cat *models.Category, in TranslationInput) error {
	var existing models.CategoryTranslation
	err := tx.Where("category_id = ? AND locale = ?", cat.ID, in.Locale).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Store("category translation lookup", err)
	}

	candidate := in.Slug
	if candidate == "" {
		candidate = i18n.Slugify(i18n.PickString(in.Name, cat.Name), in.Locale)
	}

	if !found {
		row := models.CategoryTranslation{
			CategoryID: cat.ID,
			Locale:     in.Locale,
			Name:       in.Name,
		}
		_, err := slug.CreateWithRetry(tx, slug.Scope{Table: "category_translations", Locale: in.Locale}, candidate, func(tx2 *gorm.DB, s string) error {
			row.Slug = s
			return tx2.Create(&row).Error
		})
		return err
	}

	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Slug != "" && in.Slug != existing.Slug {
		resolved, err := slug.EnsureUnique(tx, slug.Scope{Table: "category_translations", Locale: in.Locale, ExcludeID: existing.ID}, in.Slug)
		if err != nil {
			return err
		}
		existing.Slug = resolved
	}

	if err := tx.Save(&existing).Error; err != nil {
		return apperr.Store("category translation update", err)
	}
	return nil
}

// CheckAttachable enforces category scoping for posts: GLOBAL categories are
// usable by anyone; a COMPANY category only by posts whose effective company
// matches. The mismatch is a distinguishable conflict, never a silent drop.
func CheckAttachable(db *gorm.DB, categoryID uint, effectiveCompany *uint) (*models.Category, error) {
	var cat models.Category
	if err := db.First(&cat, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("category_id", "category does not exist")
		}
		return nil, apperr.Store("category lookup", err)
	}

	if cat.Type == models.CategoryGlobal {
		return &cat, nil
	}

	if cat.CompanyID == nil || effectiveCompany == nil || *cat.CompanyID != *effectiveCompany {
		return nil, apperr.Conflict("category %q belongs to another company", cat.Slug)
	}
	return &cat, nil
}

type CategoryView struct {
	ID        uint                `json:"id"`
	Locale    string              `json:"locale"`
	Type      models.CategoryType `json:"type"`
	Name      string              `json:"name"`
	Slug      string              `json:"slug"`
	CompanyID *uint               `json:"company_id,omitempty"`
}

func Resolve(cat *models.Category, tr *models.CategoryTranslation, locale string) CategoryView {
	view := CategoryView{
		ID:        cat.ID,
		Locale:    locale,
		Type:      cat.Type,
		Name:      cat.Name,
		Slug:      cat.Slug,
		CompanyID: cat.CompanyID,
	}
	if tr != nil {
		view.Name = i18n.PickString(tr.Name, cat.Name)
		view.Slug = i18n.PickString(tr.Slug, cat.Slug)
	}
	return view
}

func TranslationFor(cat *models.Category, locale string) *models.CategoryTranslation {
	for i := range cat.Translations {
		if cat.Translations[i].Locale == locale {
			return &cat.Translations[i]
		}
	}
	return nil
}

// ListCategories returns global categories plus, when companyID is set, that
// company's own.
func ListCategories(db *gorm.DB, locale string, companyID *uint) ([]CategoryView, error) {
	q := db.Preload("Translations").Order("name")
	if companyID != nil {
		q = q.Where("type = ? OR company_id = ?", models.CategoryGlobal, *companyID)
	} else {
		q = q.Where("type = ?", models.CategoryGlobal)
	}

	var cats []models.Category
	if err := q.Find(&cats).Error; err != nil {
		return nil, apperr.Store("category list", err)
	}

	views := make([]CategoryView, 0, len(cats))
	for i := range cats {
		views = append(views, Resolve(&cats[i], TranslationFor(&cats[i], locale), locale))
	}
	return views, nil
}

func DeleteCategory(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return apperr.Store("category translation delete", err)
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return apperr.Store("category delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
