package category

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Category{},
		&models.CategoryTranslation{},
	))
	return db
}

func createCompany(t *testing.T, db *gorm.DB, name, slug string) *models.Company {
	c := &models.Company{Name: name, Slug: slug}
	assert.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateCategoryGlobal(t *testing.T) {
	db := testDB(t)

	cid := uint(42)
	cat, err := CreateCategory(db, Input{Name: "Tax Law", Type: "GLOBAL", CompanyID: &cid})
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryGlobal, cat.Type)
	assert.Equal(t, "tax-law", cat.Slug)
	// A GLOBAL category never carries a company.
	assert.Nil(t, cat.CompanyID)
}

func TestCreateCategoryCompanyRequiresCompany(t *testing.T) {
	db := testDB(t)

	_, err := CreateCategory(db, Input{Name: "Internal", Type: "COMPANY"})
	assert.True(t, apperr.IsValidation(err))
}

func TestCheckAttachableGlobal(t *testing.T) {
	db := testDB(t)

	cat, err := CreateCategory(db, Input{Name: "News"})
	assert.NoError(t, err)

	// Attachable for everyone, affiliated or not.
	_, err = CheckAttachable(db, cat.ID, nil)
	assert.NoError(t, err)

	cid := uint(7)
	_, err = CheckAttachable(db, cat.ID, &cid)
	assert.NoError(t, err)
}

func TestCheckAttachableCompanyMatch(t *testing.T) {
	db := testDB(t)

	firm := createCompany(t, db, "Firm", "firm")
	cat, err := CreateCategory(db, Input{Name: "Internal", Type: "COMPANY", CompanyID: &firm.ID})
	assert.NoError(t, err)

	_, err = CheckAttachable(db, cat.ID, &firm.ID)
	assert.NoError(t, err)
}

func TestCheckAttachableCompanyMismatchIsConflict(t *testing.T) {
	db := testDB(t)

	firmA := createCompany(t, db, "Firm A", "firm-a")
	firmB := createCompany(t, db, "Firm B", "firm-b")
	cat, err := CreateCategory(db, Input{Name: "Internal", Type: "COMPANY", CompanyID: &firmA.ID})
	assert.NoError(t, err)

	// The cross-tenant case must surface as a conflict, not a generic
	// validation failure.
	_, err = CheckAttachable(db, cat.ID, &firmB.ID)
	assert.True(t, apperr.IsConflict(err), "got %v", err)

	_, err = CheckAttachable(db, cat.ID, nil)
	assert.True(t, apperr.IsConflict(err), "got %v", err)
}

func TestCheckAttachableMissingCategory(t *testing.T) {
	db := testDB(t)

	_, err := CheckAttachable(db, 999, nil)
	assert.True(t, apperr.IsValidation(err))
}

func TestListCategoriesScopesCompany(t *testing.T) {
	db := testDB(t)

	firmA := createCompany(t, db, "Firm A", "firm-a")
	firmB := createCompany(t, db, "Firm B", "firm-b")

	_, err := CreateCategory(db, Input{Name: "News"})
	assert.NoError(t, err)
	_, err = CreateCategory(db, Input{Name: "A Internal", Type: "COMPANY", CompanyID: &firmA.ID})
	assert.NoError(t, err)
	_, err = CreateCategory(db, Input{Name: "B Internal", Type: "COMPANY", CompanyID: &firmB.ID})
	assert.NoError(t, err)

	views, err := ListCategories(db, "ka", &firmA.ID)
	assert.NoError(t, err)

	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.ElementsMatch(t, []string{"News", "A Internal"}, names)

	// Unaffiliated callers only see the global set.
	views, err = ListCategories(db, "ka", nil)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
}
