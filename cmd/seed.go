package main

import (
	"errors"
	"log"
	"os"

	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/utils"
	"gorm.io/gorm"
)

// seedSuperAdmin bootstraps the first SUPER_ADMIN account from the
// environment. It is a no-op when the variables are unset or the account
// already exists.
func seedSuperAdmin(db *gorm.DB) error {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Super Admin",
		Email:    email,
		Password: hashed,
		Role:     models.RoleSuperAdmin,
		Status:   "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Super admin seeded: %s", email)
	return nil
}
