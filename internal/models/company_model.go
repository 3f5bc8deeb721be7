package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200" json:"name"`
	Slug        string `gorm:"size:150;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	LogoURL     string `gorm:"size:500" json:"logo_url,omitempty"`

	// JSON-encoded list of strings, e.g. ["tax", "corporate", "family"].
	Specializations datatypes.JSON `json:"specializations,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	Translations []CompanyTranslation `gorm:"foreignKey:CompanyID" json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type CompanyTranslation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"uniqueIndex:idx_company_locale" json:"company_id"`
	Locale    string `gorm:"size:5;uniqueIndex:idx_company_locale;uniqueIndex:idx_company_tr_slug" json:"locale"`

	Name        string `gorm:"size:200" json:"name"`
	Slug        string `gorm:"size:150;uniqueIndex:idx_company_tr_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`

	Specializations datatypes.JSON `json:"specializations,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
