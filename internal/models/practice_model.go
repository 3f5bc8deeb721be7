package models

import (
	"time"

	"gorm.io/gorm"
)

type PracticeArea struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:150;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	IconURL     string `gorm:"size:500" json:"icon_url,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	Translations []PracticeAreaTranslation `gorm:"foreignKey:PracticeAreaID" json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type PracticeAreaTranslation struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PracticeAreaID uint   `gorm:"uniqueIndex:idx_practice_locale" json:"practice_area_id"`
	Locale         string `gorm:"size:5;uniqueIndex:idx_practice_locale;uniqueIndex:idx_practice_tr_slug" json:"locale"`

	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:150;uniqueIndex:idx_practice_tr_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LegalService struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:150;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	PracticeAreaID *uint         `gorm:"index" json:"practice_area_id,omitempty"`
	PracticeArea   *PracticeArea `gorm:"foreignKey:PracticeAreaID" json:"practice_area,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	Translations []LegalServiceTranslation `gorm:"foreignKey:ServiceID" json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type LegalServiceTranslation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ServiceID uint   `gorm:"uniqueIndex:idx_service_locale" json:"service_id"`
	Locale    string `gorm:"size:5;uniqueIndex:idx_service_locale;uniqueIndex:idx_service_tr_slug" json:"locale"`

	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:150;uniqueIndex:idx_service_tr_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
