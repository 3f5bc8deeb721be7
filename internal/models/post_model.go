package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

func EnsureEnum(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'post_status') THEN
				CREATE TYPE post_status AS ENUM (
					'draft',
					'published'
				);
			END IF;
		END
		$$;
	`).Error
}

type AuthorType string

const (
	AuthorCompany    AuthorType = "COMPANY"
	AuthorSpecialist AuthorType = "SPECIALIST"
	AuthorSuperAdmin AuthorType = "SUPER_ADMIN"
)

// Posts are deleted outright, so no soft-delete column here.
type Post struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Status PostStatus `gorm:"type:post_status;default:'draft';index" json:"status"`
	Locale string     `gorm:"size:5;index" json:"locale"`

	Title    string `gorm:"size:255" json:"title"`
	Slug     string `gorm:"size:150;uniqueIndex" json:"slug"`
	Excerpt  string `gorm:"size:500" json:"excerpt"`
	Body     string `gorm:"type:text" json:"body"`
	CoverURL string `gorm:"size:500" json:"cover_url,omitempty"`
	CoverAlt string `gorm:"size:255" json:"cover_alt,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	AuthorType AuthorType `gorm:"size:20" json:"author_type"`
	// Nil marks an orphaned post, claimable on first authorized edit.
	AuthorID *uint `gorm:"index" json:"author_id,omitempty"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CompanyID *uint    `gorm:"index" json:"company_id,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Translations []PostTranslation `gorm:"foreignKey:PostID" json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Stamped on the first draft->published transition only.
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type PostTranslation struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	PostID uint   `gorm:"uniqueIndex:idx_post_locale" json:"post_id"`
	Locale string `gorm:"size:5;uniqueIndex:idx_post_locale;uniqueIndex:idx_post_tr_slug" json:"locale"`

	Title   string `gorm:"size:255" json:"title"`
	Slug    string `gorm:"size:150;uniqueIndex:idx_post_tr_slug" json:"slug"`
	Excerpt string `gorm:"size:500" json:"excerpt"`
	Body    string `gorm:"type:text" json:"body"`

	// Independently overridable per locale.
	CoverAlt string `gorm:"size:255" json:"cover_alt,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authorship is the explicit claim state behind Post.AuthorID.
type Authorship struct {
	Claimed bool
	UserID  uint
}

func (p *Post) Authorship() Authorship {
	if p.AuthorID == nil {
		return Authorship{}
	}
	return Authorship{Claimed: true, UserID: *p.AuthorID}
}

// Claim adopts the given user as author of an orphaned post. It is a no-op
// when the post already has an author.
func (p *Post) Claim(userID uint) bool {
	if p.AuthorID != nil {
		return false
	}
	p.AuthorID = &userID
	return true
}
