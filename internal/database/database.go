package database

import (
	"fmt"

	"github.com/agrotech/core/internal/config"
	"github.com/agrotech/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and runs auto-migration.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.CategoryModel{},
		&models.ServiceModel{},
		&models.BlogPostModel{},
		&models.TeamMemberModel{},
		&models.TestimonialModel{},
		&models.ContactMessageModel{},
		&models.ServiceInquiryModel{},
		&models.StatisticModel{},
		&models.HeroSlideModel{},
		&models.NewsletterSubscriberModel{},
		&models.FileReferenceModel{},
		&models.OptionModel{},
	)
}
