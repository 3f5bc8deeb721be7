package auth

import (
	"fmt"

	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/utils"
	"gorm.io/gorm"
)

func RegisterUser(db *gorm.DB, name, email, password string, role models.UserRole, companySlug string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Name:        name,
		Email:       email,
		Password:    hashedPassword,
		Role:        role,
		Status:      "active",
		CompanySlug: companySlug,
	}

	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func LoginUser(db *gorm.DB, email, password string) (string, string, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", "", fmt.Errorf("invalid credentials")
	}

	accessToken, err := utils.GenerateJWT(&user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateRefreshToken(db, user.ID)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
