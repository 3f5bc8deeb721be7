package database

import (
	"fmt"
	"log"

	"github.com/legalge/platform/internal/config"
	"github.com/legalge/platform/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := models.EnsureEnum(db); err != nil {
		return fmt.Errorf("create enum: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.CompanyTranslation{},
		&models.SpecialistProfile{},
		&models.SpecialistTranslation{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.Post{},
		&models.PostTranslation{},
		&models.PracticeArea{},
		&models.PracticeAreaTranslation{},
		&models.LegalService{},
		&models.LegalServiceTranslation{},
		&models.ResetToken{},
		&models.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Println("Database migrated successfully!")
	return nil
}
