package infra

import (
	"fmt"

	"github.com/alanalzi/jalin-alam-project/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all tables. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey, which the services map to
// 409 Conflict responses.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Inquiry{},
		&model.InquiryImage{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductChecklistItem{},
		&model.ProductMaterial{},
		&model.Supplier{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
