package company

import (
	"testing"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestCreateCompanyDerivesSlug(t *testing.T) {
	db := testDB(t)

	c, err := CreateCompany(db, Input{Name: "Tom's Legal Group"})
	assert.NoError(t, err)
	assert.Equal(t, "toms-legal-group", c.Slug)
}

func TestCreateCompanySlugCollision(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{Name: "Firm"})
	assert.NoError(t, err)
	second, err := CreateCompany(db, Input{Name: "Firm"})
	assert.NoError(t, err)
	assert.Equal(t, "firm-1", second.Slug)
}

func TestCreateCompanyWithTranslations(t *testing.T) {
	db := testDB(t)

	c, err := CreateCompany(db, Input{
		Name:            "იურიდიული ჯგუფი",
		Specializations: datatypes.JSON(`["tax","corporate"]`),
		Translations: []TranslationInput{
			{Locale: "en", Name: "Legal Group", Description: "English description"},
		},
	})
	assert.NoError(t, err)

	var trs []models.CompanyTranslation
	assert.NoError(t, db.Where("company_id = ?", c.ID).Find(&trs).Error)
	assert.Len(t, trs, 1)
	assert.Equal(t, "legal-group", trs[0].Slug)
}

func TestCreateCompanyRejectsUnknownLocale(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{
		Name:         "Firm",
		Translations: []TranslationInput{{Locale: "de", Name: "Kanzlei"}},
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.Company{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateCompanyRejectsMalformedSpecializations(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{
		Name:            "Firm",
		Specializations: datatypes.JSON(`{not valid json`),
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.Company{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateCompanyRejectsMalformedTranslationSpecializations(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{
		Name: "Firm",
		Translations: []TranslationInput{
			{Locale: "en", Name: "Firm EN", Specializations: datatypes.JSON(`[unterminated`)},
		},
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.Company{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGetBySlugMergesTranslation(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{
		Name:            "ძირითადი სახელი",
		Description:     "ძირითადი აღწერა",
		Phone:           "+995 32 123",
		Specializations: datatypes.JSON(`["tax"]`),
		Translations: []TranslationInput{
			{Locale: "en", Name: "Base Name EN", Specializations: datatypes.JSON(`["tax-en"]`)},
		},
	})
	assert.NoError(t, err)

	view, err := GetBySlug(db, "ძირითადი-სახელი", "en")
	assert.NoError(t, err)

	// Translated name wins; untranslated description falls back to the base.
	assert.Equal(t, "Base Name EN", view.Name)
	assert.Equal(t, "ძირითადი აღწერა", view.Description)
	assert.Equal(t, "+995 32 123", view.Phone)

	// JSON composites swap wholesale.
	assert.JSONEq(t, `["tax-en"]`, string(view.Specializations))
}

func TestGetBySlugResolvesTranslationSlug(t *testing.T) {
	db := testDB(t)

	_, err := CreateCompany(db, Input{
		Name:         "ქართული ფირმა",
		Translations: []TranslationInput{{Locale: "en", Name: "Georgian Firm"}},
	})
	assert.NoError(t, err)

	view, err := GetBySlug(db, "georgian-firm", "en")
	assert.NoError(t, err)
	assert.Equal(t, "Georgian Firm", view.Name)
}

func TestGetBySlugNotFound(t *testing.T) {
	db := testDB(t)

	_, err := GetBySlug(db, "nowhere", "ka")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateCompanyKeepsSlugWithExclude(t *testing.T) {
	db := testDB(t)

	c, err := CreateCompany(db, Input{Name: "Stable Firm"})
	assert.NoError(t, err)

	updated, err := UpdateCompany(db, c.ID, Input{Slug: "stable-firm", Phone: "+995 32 999"})
	assert.NoError(t, err)
	assert.Equal(t, "stable-firm", updated.Slug)
	assert.Equal(t, "+995 32 999", updated.Phone)
}

func TestDeleteTranslationLocale(t *testing.T) {
	db := testDB(t)

	c, err := CreateCompany(db, Input{
		Name:         "Firm",
		Translations: []TranslationInput{{Locale: "en", Name: "Firm EN"}},
	})
	assert.NoError(t, err)

	assert.NoError(t, DeleteTranslation(db, c.ID, "en"))

	var count int64
	db.Model(&models.CompanyTranslation{}).Where("company_id = ?", c.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
