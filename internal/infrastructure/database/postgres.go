package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sangkips/alinea-erp/internal/config"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	logger.Info("Connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations")

	err := db.AutoMigrate(
		&entity.Company{},
		&entity.Customer{},
		&entity.Product{},

		&entity.Acknowledgement{},
		&entity.AcknowledgementItem{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderItem{},
		&entity.JournalEntry{},
		&entity.JournalTransaction{},
		&entity.Invoice{},
		&entity.InvoiceItem{},

		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}

// SeedCompany creates the named company with default settings unless a
// company with the same slug exists
func SeedCompany(ctx context.Context, db *gorm.DB, name string) (*entity.Company, error) {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))

	var company entity.Company
	err := db.WithContext(ctx).First(&company, "slug = ?", slug).Error
	if err == nil {
		logger.Debug("Company already seeded", zap.String("slug", slug))
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company = entity.Company{
		Name:     name,
		Slug:     slug,
		Settings: entity.DefaultCompanySettings(),
	}
	if err := db.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to seed company: %w", err)
	}
	logger.Info("Seeded company", zap.String("slug", slug), zap.String("company_id", company.ID.String()))
	return &company, nil
}
