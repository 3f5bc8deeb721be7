package company

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Company{}, &models.CompanyTranslation{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, u *models.User) *models.User {
	if u.Email == "" {
		u.Email = u.Name + "@test.ge"
	}
	assert.NoError(t, db.Create(u).Error)
	return u
}

func TestResolveSessionIDWins(t *testing.T) {
	db := testDB(t)

	stale := models.Company{Name: "Old Firm", Slug: "old-firm"}
	current := models.Company{Name: "New Firm", Slug: "new-firm"}
	assert.NoError(t, db.Create(&stale).Error)
	assert.NoError(t, db.Create(&current).Error)

	u := createUser(t, db, &models.User{Name: "a", Role: models.RoleSpecialist, CompanyID: &stale.ID})

	// The session claim shadows the stored value.
	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role, CompanyID: &current.ID})
	assert.NoError(t, err)
	assert.Equal(t, current.ID, *got)
}

func TestResolveStoredID(t *testing.T) {
	db := testDB(t)

	c := models.Company{Name: "Firm", Slug: "firm"}
	assert.NoError(t, db.Create(&c).Error)
	u := createUser(t, db, &models.User{Name: "b", Role: models.RoleSpecialist, CompanyID: &c.ID})

	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role})
	assert.NoError(t, err)
	assert.Equal(t, c.ID, *got)
}

func TestResolveSessionSlug(t *testing.T) {
	db := testDB(t)

	c := models.Company{Name: "Firm", Slug: "firm"}
	assert.NoError(t, db.Create(&c).Error)
	u := createUser(t, db, &models.User{Name: "c", Role: models.RoleSpecialist})

	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role, CompanySlug: "firm"})
	assert.NoError(t, err)
	assert.Equal(t, c.ID, *got)
}

func TestResolveStoredSlug(t *testing.T) {
	db := testDB(t)

	c := models.Company{Name: "Firm", Slug: "firm"}
	assert.NoError(t, db.Create(&c).Error)
	u := createUser(t, db, &models.User{Name: "d", Role: models.RoleSpecialist, CompanySlug: "firm"})

	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role})
	assert.NoError(t, err)
	assert.Equal(t, c.ID, *got)
}

func TestResolveSoloPractitioner(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, &models.User{Name: "e", Role: models.RoleSpecialist})

	// No affiliation anywhere is a legitimate state, not an error.
	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveDanglingSlug(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, &models.User{Name: "f", Role: models.RoleSpecialist, CompanySlug: "vanished"})

	got, err := ResolveCompanyID(db, auth.Actor{UserID: u.ID, Role: u.Role})
	assert.NoError(t, err)
	assert.Nil(t, got)
}
