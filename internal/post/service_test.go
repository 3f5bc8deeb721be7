package post

import (
	"testing"
	"time"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func actorFor(u *models.User) auth.Actor {
	return auth.Actor{UserID: u.ID, Role: u.Role, CompanyID: u.CompanyID}
}

func TestCreatePostDerivesSlug(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	p, err := CreatePost(db, actorFor(author), Input{Title: "Tax Law Changes"})
	assert.NoError(t, err)
	assert.Equal(t, "tax-law-changes", p.Slug)
	assert.Equal(t, models.StatusDraft, p.Status)
	assert.Equal(t, models.AuthorSpecialist, p.AuthorType)
	assert.Equal(t, author.ID, *p.AuthorID)
}

func TestCreatePostSuffixesOnCollision(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	first, err := CreatePost(db, actorFor(author), Input{Title: "Tax Law Changes"})
	assert.NoError(t, err)
	second, err := CreatePost(db, actorFor(author), Input{Title: "Tax Law Changes"})
	assert.NoError(t, err)

	assert.Equal(t, "tax-law-changes", first.Slug)
	assert.Equal(t, "tax-law-changes-1", second.Slug)
}

func TestCreatePostAttachesResolvedCompany(t *testing.T) {
	db := testDB(t)

	firm := models.Company{Name: "Firm", Slug: "firm"}
	assert.NoError(t, db.Create(&firm).Error)
	admin := createUser(t, db, "admin@firm.ge", models.RoleCompany, &firm.ID)

	p, err := CreatePost(db, actorFor(admin), Input{Title: "Firm News"})
	assert.NoError(t, err)
	assert.Equal(t, firm.ID, *p.CompanyID)
	assert.Equal(t, models.AuthorCompany, p.AuthorType)
}

func TestCreatePostRejectsSubscriber(t *testing.T) {
	db := testDB(t)
	sub := createUser(t, db, "sub@test.ge", models.RoleSubscriber, nil)

	_, err := CreatePost(db, actorFor(sub), Input{Title: "Nope"})
	assert.True(t, apperr.IsForbidden(err))
}

func TestCreatePostForeignCompanyCategoryConflict(t *testing.T) {
	db := testDB(t)

	firmA := models.Company{Name: "Firm A", Slug: "firm-a"}
	firmB := models.Company{Name: "Firm B", Slug: "firm-b"}
	assert.NoError(t, db.Create(&firmA).Error)
	assert.NoError(t, db.Create(&firmB).Error)

	cat := models.Category{Name: "Internal", Slug: "internal", Type: models.CategoryCompany, CompanyID: &firmB.ID}
	assert.NoError(t, db.Create(&cat).Error)

	admin := createUser(t, db, "admin@firm-a.ge", models.RoleCompany, &firmA.ID)

	_, err := CreatePost(db, actorFor(admin), Input{Title: "Cross-tenant", CategoryID: &cat.ID})
	assert.True(t, apperr.IsConflict(err), "expected a conflict, got %v", err)

	// The conflict is distinguishable AND nothing was written.
	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreatePostGlobalCategoryAlwaysAttachable(t *testing.T) {
	db := testDB(t)

	cat := models.Category{Name: "News", Slug: "news", Type: models.CategoryGlobal}
	assert.NoError(t, db.Create(&cat).Error)

	author := createUser(t, db, "solo@test.ge", models.RoleSpecialist, nil)

	p, err := CreatePost(db, actorFor(author), Input{Title: "Update", CategoryID: &cat.ID})
	assert.NoError(t, err)
	assert.Equal(t, cat.ID, *p.CategoryID)
}

func TestCreatePostInvalidTranslationWritesNothing(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	_, err := CreatePost(db, actorFor(author), Input{
		Title:        "Atomic",
		Translations: []TranslationInput{{Locale: "fr", Title: "Atomique"}},
	})
	assert.True(t, apperr.IsValidation(err))

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreatePostTranslationsGetOwnSlugs(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	p, err := CreatePost(db, actorFor(author), Input{
		Title: "Tax Law Changes",
		Translations: []TranslationInput{
			{Locale: "en", Title: "Tax Law Changes"},
			{Locale: "ru", Title: "Изменения налогового права"},
		},
	})
	assert.NoError(t, err)

	var trs []models.PostTranslation
	assert.NoError(t, db.Where("post_id = ?", p.ID).Order("locale").Find(&trs).Error)
	assert.Len(t, trs, 2)
	assert.Equal(t, "tax-law-changes", trs[0].Slug)
	assert.Equal(t, "изменения-налогового-права", trs[1].Slug)
}

func TestCreatePostSanitizesBody(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	p, err := CreatePost(db, actorFor(author), Input{
		Title:   "Sanitized",
		Body:    `<p>fine</p><script>alert(1)</script>`,
		Excerpt: `plain <b>bold</b>`,
	})
	assert.NoError(t, err)
	assert.Contains(t, p.Body, "<p>fine</p>")
	assert.NotContains(t, p.Body, "<script>")
	assert.NotContains(t, p.Excerpt, "<b>")
}

func TestUpdatePostAdoptsOrphan(t *testing.T) {
	db := testDB(t)

	orphan := createPost(t, db, &models.Post{Title: "Orphan", Slug: "orphan"})
	specialist := createUser(t, db, "spec@test.ge", models.RoleSpecialist, nil)

	updated, err := UpdatePost(db, actorFor(specialist), orphan.ID, Input{Title: "Claimed"})
	assert.NoError(t, err)
	assert.Equal(t, specialist.ID, *updated.AuthorID)
	assert.Equal(t, models.AuthorSpecialist, updated.AuthorType)

	// Adoption survives the request.
	var stored models.Post
	assert.NoError(t, db.First(&stored, orphan.ID).Error)
	assert.Equal(t, specialist.ID, *stored.AuthorID)
}

func TestUpdatePostDeniedForForeignAuthor(t *testing.T) {
	db := testDB(t)

	owner := createUser(t, db, "owner@test.ge", models.RoleSpecialist, nil)
	intruder := createUser(t, db, "intruder@test.ge", models.RoleSpecialist, nil)
	p := createPost(t, db, &models.Post{Title: "Mine", Slug: "mine", AuthorID: &owner.ID})

	_, err := UpdatePost(db, actorFor(intruder), p.ID, Input{Title: "Taken"})
	assert.True(t, apperr.IsForbidden(err))
}

func TestUpdatePostKeepsSlugWhenUnchanged(t *testing.T) {
	db := testDB(t)

	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)
	p := createPost(t, db, &models.Post{Title: "Stable", Slug: "stable", AuthorID: &author.ID})

	updated, err := UpdatePost(db, actorFor(author), p.ID, Input{Slug: "stable", Title: "Stable, retitled"})
	assert.NoError(t, err)
	assert.Equal(t, "stable", updated.Slug)
}

func TestUpdatePostNotFound(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)

	_, err := UpdatePost(db, actorFor(author), 12345, Input{Title: "Ghost"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestPublishStampsOnce(t *testing.T) {
	db := testDB(t)

	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)
	p := createPost(t, db, &models.Post{Title: "Draft", Slug: "draft", AuthorID: &author.ID})

	published, err := PublishPost(db, actorFor(author), p.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	time.Sleep(10 * time.Millisecond)

	again, err := PublishPost(db, actorFor(author), p.ID)
	assert.NoError(t, err)
	assert.WithinDuration(t, first, *again.PublishedAt, time.Millisecond)
	assert.Equal(t, models.StatusPublished, again.Status)
}

func TestDeletePostRemovesTranslations(t *testing.T) {
	db := testDB(t)

	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)
	p, err := CreatePost(db, actorFor(author), Input{
		Title:        "Doomed",
		Translations: []TranslationInput{{Locale: "en", Title: "Doomed"}},
	})
	assert.NoError(t, err)

	assert.NoError(t, DeletePost(db, actorFor(author), p.ID))

	var posts, trs int64
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.PostTranslation{}).Count(&trs)
	assert.EqualValues(t, 0, posts)
	assert.EqualValues(t, 0, trs)
}

func TestGetPublicBySlugTranslationFirst(t *testing.T) {
	db := testDB(t)

	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)
	p, err := CreatePost(db, actorFor(author), Input{
		Title: "საგადასახადო სიახლეები",
		Body:  "<p>ძირითადი ტექსტი</p>",
		Translations: []TranslationInput{
			{Locale: "en", Title: "Tax News", Body: "<p>english text</p>"},
		},
	})
	assert.NoError(t, err)
	_, err = PublishPost(db, actorFor(author), p.ID)
	assert.NoError(t, err)

	view, err := GetPublicBySlug(db, "tax-news", "en")
	assert.NoError(t, err)
	assert.Equal(t, "Tax News", view.Title)
	assert.Equal(t, "<p>english text</p>", view.Body)

	// The base slug still resolves, merged for the requested locale.
	view, err = GetPublicBySlug(db, p.Slug, "en")
	assert.NoError(t, err)
	assert.Equal(t, "Tax News", view.Title)
}

func TestGetPublicBySlugHidesDrafts(t *testing.T) {
	db := testDB(t)

	author := createUser(t, db, "author@test.ge", models.RoleSpecialist, nil)
	p, err := CreatePost(db, actorFor(author), Input{Title: "Hidden Draft"})
	assert.NoError(t, err)

	_, err = GetPublicBySlug(db, p.Slug, "ka")
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetManagePostHidesForbiddenAsNotFound(t *testing.T) {
	db := testDB(t)

	owner := createUser(t, db, "owner@test.ge", models.RoleSpecialist, nil)
	outsider := createUser(t, db, "outsider@test.ge", models.RoleSubscriber, nil)
	p := createPost(t, db, &models.Post{Title: "Private", Slug: "private", AuthorID: &owner.ID})

	_, err := GetManagePost(db, actorFor(outsider), p.ID)
	assert.True(t, apperr.IsNotFound(err))
}
