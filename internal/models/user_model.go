package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleCompany    UserRole = "COMPANY"
	RoleSpecialist UserRole = "SPECIALIST"
	RoleSubscriber UserRole = "SUBSCRIBER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompany, RoleSpecialist, RoleSubscriber:
		return true
	}
	return false
}

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"size:100" json:"name"`
	Email    string   `gorm:"uniqueIndex;size:100" json:"email"`
	Password string   `gorm:"size:255" json:"-"`
	Role     UserRole `gorm:"size:20;default:'SUBSCRIBER';index" json:"role"`
	Status   string   `gorm:"size:20;default:'active'" json:"status"`

	// Company linkage can be established at registration (slug) or assigned
	// later (id); either may be absent for solo practitioners.
	CompanyID   *uint    `gorm:"index" json:"company_id,omitempty"`
	Company     *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	CompanySlug string   `gorm:"size:150" json:"company_slug,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
