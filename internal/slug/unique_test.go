package slug

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Post{}, &models.PostTranslation{}))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, slug string) *models.Post {
	p := &models.Post{Title: slug, Slug: slug}
	assert.NoError(t, db.Create(p).Error)
	return p
}

func TestEnsureUniqueFreeSlug(t *testing.T) {
	db := testDB(t)

	got, err := EnsureUnique(db, Scope{Table: "posts"}, "tax-law-changes")
	assert.NoError(t, err)
	assert.Equal(t, "tax-law-changes", got)
}

func TestEnsureUniqueSuffixesMonotonically(t *testing.T) {
	db := testDB(t)
	seedPost(t, db, "tax-law-changes")

	got, err := EnsureUnique(db, Scope{Table: "posts"}, "tax-law-changes")
	assert.NoError(t, err)
	assert.Equal(t, "tax-law-changes-1", got)

	seedPost(t, db, "tax-law-changes-1")
	seedPost(t, db, "tax-law-changes-2")

	got, err = EnsureUnique(db, Scope{Table: "posts"}, "tax-law-changes")
	assert.NoError(t, err)
	assert.Equal(t, "tax-law-changes-3", got)
}

func TestEnsureUniqueExcludeID(t *testing.T) {
	db := testDB(t)
	p := seedPost(t, db, "my-post")

	// Editing a record keeps its own slug without a suffix.
	got, err := EnsureUnique(db, Scope{Table: "posts", ExcludeID: p.ID}, "my-post")
	assert.NoError(t, err)
	assert.Equal(t, "my-post", got)

	// A different record still collides.
	got, err = EnsureUnique(db, Scope{Table: "posts"}, "my-post")
	assert.NoError(t, err)
	assert.Equal(t, "my-post-1", got)
}

func TestEnsureUniqueLocaleScoped(t *testing.T) {
	db := testDB(t)
	p := seedPost(t, db, "base")
	tr := &models.PostTranslation{PostID: p.ID, Locale: "en", Slug: "tax-news", Title: "Tax News"}
	assert.NoError(t, db.Create(tr).Error)

	// Same slug in a different locale is free.
	got, err := EnsureUnique(db, Scope{Table: "post_translations", Locale: "ru"}, "tax-news")
	assert.NoError(t, err)
	assert.Equal(t, "tax-news", got)

	// Same locale collides.
	got, err = EnsureUnique(db, Scope{Table: "post_translations", Locale: "en"}, "tax-news")
	assert.NoError(t, err)
	assert.Equal(t, "tax-news-1", got)
}

func TestBump(t *testing.T) {
	assert.Equal(t, "post-1", Bump("post"))
	assert.Equal(t, "post-2", Bump("post-1"))
	assert.Equal(t, "post-10", Bump("post-9"))
	// A trailing number that is part of the name, not a suffix we added,
	// still increments; callers only Bump slugs they already suffixed or
	// that collided.
	assert.Equal(t, "review-2027", Bump("review-2026"))
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: posts.slug")))
	assert.True(t, IsDuplicate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, IsDuplicate(errors.New("connection refused")))
	assert.False(t, IsDuplicate(nil))
}

func TestCreateWithRetryFirstAttempt(t *testing.T) {
	db := testDB(t)

	got, err := CreateWithRetry(db, Scope{Table: "posts"}, "fresh", func(tx *gorm.DB, s string) error {
		return tx.Create(&models.Post{Title: "Fresh", Slug: s}).Error
	})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", got)

	var count int64
	db.Model(&models.Post{}).Where("slug = ?", "fresh").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateWithRetryBumpsOnLateCollision(t *testing.T) {
	db := testDB(t)

	// Simulate a concurrent writer grabbing the slug between the uniqueness
	// check and the insert: the first attempt hits the constraint, the next
	// suffix goes through.
	attempts := 0
	got, err := CreateWithRetry(db, Scope{Table: "posts"}, "contested", func(tx *gorm.DB, s string) error {
		attempts++
		if attempts == 1 {
			return errors.New("UNIQUE constraint failed: posts.slug")
		}
		return tx.Create(&models.Post{Title: "Contested", Slug: s}).Error
	})
	assert.NoError(t, err)
	assert.Equal(t, "contested-1", got)
	assert.Equal(t, 2, attempts)
}

func TestCreateWithRetryGivesUp(t *testing.T) {
	db := testDB(t)

	_, err := CreateWithRetry(db, Scope{Table: "posts"}, "doomed", func(tx *gorm.DB, s string) error {
		return errors.New("UNIQUE constraint failed: posts.slug")
	})
	assert.Error(t, err)
}
