package user

import (
	"errors"
	"strings"

	"github.com/legalge/platform/internal/apperr"
	"github.com/legalge/platform/internal/models"
	"gorm.io/gorm"
)

type UpdateInput struct {
	Name        string          `json:"name,omitempty"`
	Role        models.UserRole `json:"role,omitempty"`
	Status      string          `json:"status,omitempty"`
	CompanyID   *uint           `json:"company_id,omitempty"`
	CompanySlug string          `json:"company_slug,omitempty"`
}

// ListUsers returns a page of users for the admin dashboard, newest first.
func ListUsers(db *gorm.DB, role models.UserRole, search string, page, limit int) ([]models.User, int64, error) {
	q := db.Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("user count", err)
	}

	var users []models.User
	err := q.Preload("Company").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, apperr.Store("user list", err)
	}
	return users, total, nil
}

func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := db.Preload("Company").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("user lookup", err)
	}
	return &u, nil
}

// UpdateUser lets an admin change role, status, and company affiliation.
// Setting company_id also clears any legacy company_slug so resolution reads
// the id first.
func UpdateUser(db *gorm.DB, id uint, in UpdateInput) (*models.User, error) {
	u, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if in.Role != "" {
		if !in.Role.Valid() {
			return nil, apperr.Validation("role", "unknown role "+string(in.Role))
		}
		u.Role = in.Role
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Status != "" {
		u.Status = in.Status
	}
	if in.CompanyID != nil {
		var company models.Company
		if err := db.First(&company, *in.CompanyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("company_id", "company does not exist")
			}
			return nil, apperr.Store("company lookup", err)
		}
		u.CompanyID = in.CompanyID
		u.CompanySlug = ""
	}
	if in.CompanySlug != "" {
		u.CompanySlug = in.CompanySlug
	}

	if err := db.Save(u).Error; err != nil {
		return nil, apperr.Store("user update", err)
	}
	return u, nil
}

func DeleteUser(db *gorm.DB, id uint) error {
	res := db.Delete(&models.User{}, id)
	if res.Error != nil {
		return apperr.Store("user delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
