package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SpecialistProfile struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200" json:"name"`
	Slug string `gorm:"size:150;uniqueIndex" json:"slug"`
	Bio  string `gorm:"type:text" json:"bio"`

	// Nil for solo practitioners.
	CompanyID *uint    `gorm:"index" json:"company_id,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	// Secondary identity key: legacy accounts predate the user->company
	// foreign key and are matched against post authors by this address.
	ContactEmail string `gorm:"size:100;index" json:"contact_email"`

	Phone    string `gorm:"size:50" json:"phone"`
	PhotoURL string `gorm:"size:500" json:"photo_url,omitempty"`

	FocusAreas  datatypes.JSON `json:"focus_areas,omitempty"`
	Credentials datatypes.JSON `json:"credentials,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	Translations []SpecialistTranslation `gorm:"foreignKey:SpecialistID" json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type SpecialistTranslation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SpecialistID uint   `gorm:"uniqueIndex:idx_specialist_locale" json:"specialist_id"`
	Locale       string `gorm:"size:5;uniqueIndex:idx_specialist_locale;uniqueIndex:idx_specialist_tr_slug" json:"locale"`

	Name string `gorm:"size:200" json:"name"`
	Slug string `gorm:"size:150;uniqueIndex:idx_specialist_tr_slug" json:"slug"`
	Bio  string `gorm:"type:text" json:"bio"`

	FocusAreas  datatypes.JSON `json:"focus_areas,omitempty"`
	Credentials datatypes.JSON `json:"credentials,omitempty"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
