package specialist

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.SpecialistProfile{},
		&models.SpecialistTranslation{},
	))
	return db
}

func TestCreateSpecialistDerivesSlug(t *testing.T) {
	db := testDB(t)

	sp, err := CreateSpecialist(db, Input{Name: "Tom's Associate"})
	assert.NoError(t, err)
	assert.Equal(t, "toms-associate", sp.Slug)
}

func TestCreateSpecialistRejectsMalformedFocusAreas(t *testing.T) {
	db := testDB(t)

	_, err := CreateSpecialist(db, Input{
		Name:       "Ana",
		FocusAreas: datatypes.JSON(`{not valid json`),
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.SpecialistProfile{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateSpecialistRejectsMalformedTranslationCredentials(t *testing.T) {
	db := testDB(t)

	_, err := CreateSpecialist(db, Input{
		Name: "Ana",
		Translations: []TranslationInput{
			{Locale: "en", Name: "Ana EN", Credentials: datatypes.JSON(`[unterminated`)},
		},
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.SpecialistProfile{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestUpdateSpecialistRejectsMalformedCredentials(t *testing.T) {
	db := testDB(t)

	sp, err := CreateSpecialist(db, Input{
		Name:        "Ana",
		Credentials: datatypes.JSON(`["bar-association"]`),
	})
	assert.NoError(t, err)

	_, err = UpdateSpecialist(db, sp.ID, Input{Credentials: datatypes.JSON(`{broken`)})
	assert.True(t, apperr.IsValidation(err))

	var stored models.SpecialistProfile
	assert.NoError(t, db.First(&stored, sp.ID).Error)
	assert.JSONEq(t, `["bar-association"]`, string(stored.Credentials))
}
