package database

import (
	"fmt"
	"time"

	"temple-outreach-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. TranslateError is enabled so unique-constraint violations surface
// as gorm.ErrDuplicatedKey; the follow-up conflict handling relies on that.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	all := []interface{}{
		&models.User{},
		&models.Program{},
		&models.Enrollment{},
		&models.Contact{},
		&models.FollowUpAssignment{},
		&models.Session{},
		&models.Attendance{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// Partial unique indexes: at most one live assignment per (contact, date)
	// and one live session per (program, date). Soft-deleted rows stay out
	// of the constraint so a list can be recreated after deletion. GORM tags
	// cannot express the WHERE clause.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_follow_up_assignments_contact_date
		 ON follow_up_assignments (contact_id, follow_up_date) WHERE deleted_at IS NULL`,
	).Error; err != nil {
		return nil, fmt.Errorf("create assignment unique index: %w", err)
	}
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_program_date
		 ON sessions (program_id, session_date) WHERE deleted_at IS NULL`,
	).Error; err != nil {
		return nil, fmt.Errorf("create session unique index: %w", err)
	}

	return db, nil
}
