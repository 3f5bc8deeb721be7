package models

import (
	"time"

	"gorm.io/gorm"
)

type CategoryType string

const (
	CategoryGlobal  CategoryType = "GLOBAL"
	CategoryCompany CategoryType = "COMPANY"
)

type Category struct {
	ID   uint         `gorm:"primaryKey" json:"id"`
	Type CategoryType `gorm:"size:20;default:'GLOBAL';index" json:"type"`
	Name string       `gorm:"size:150" json:"name"`
	Slug string       `gorm:"size:150;uniqueIndex" json:"slug"`

	// Set only for COMPANY-scoped categories.
	CompanyID *uint    `gorm:"index" json:"company_id,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Translations []CategoryTranslation `gorm:"foreignKey:CategoryID" json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type CategoryTranslation struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"uniqueIndex:idx_category_locale" json:"category_id"`
	Locale     string `gorm:"size:5;uniqueIndex:idx_category_locale;uniqueIndex:idx_category_tr_slug" json:"locale"`

	Name string `gorm:"size:150" json:"name"`
	Slug string `gorm:"size:150;uniqueIndex:idx_category_tr_slug" json:"slug"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
