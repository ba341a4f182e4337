package storage

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Journal persists launch and explosion records to SQLite.
type Journal struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Open connects to the SQLite file at path and migrates the schema.
// An empty path keeps the journal in memory.
func Open(path string, log zerolog.Logger) (*Journal, error) {
	log = log.With().Str("component", "journal").Logger()

	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if path == "" {
		// every connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
		log.Info().Msg("Using in-memory journal")
	} else {
		log.Info().Str("path", path).Msg("Using journal file")
	}

	if err := db.AutoMigrate(Models...); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating journal schema: %w", err)
	}

	return &Journal{db: db, logger: log}, nil
}

func (j *Journal) RecordLaunch(ctx context.Context, rec *LaunchRecord) error {
	if err := j.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("recording launch %s: %w", rec.FlyableID, err)
	}
	return nil
}

func (j *Journal) RecordExplosion(ctx context.Context, rec *ExplosionRecord) error {
	if err := j.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("recording explosion %s: %w", rec.FlyableID, err)
	}
	return nil
}

// Launches returns every launch in insertion order.
func (j *Journal) Launches(ctx context.Context) ([]LaunchRecord, error) {
	var out []LaunchRecord
	if err := j.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing launches: %w", err)
	}
	return out, nil
}

// Explosions returns every explosion in insertion order.
func (j *Journal) Explosions(ctx context.Context) ([]ExplosionRecord, error) {
	var out []ExplosionRecord
	if err := j.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing explosions: %w", err)
	}
	return out, nil
}

// DirectHits counts explosions that named a victim.
func (j *Journal) DirectHits(ctx context.Context) (int64, error) {
	var n int64
	err := j.db.WithContext(ctx).Model(&ExplosionRecord{}).Where("victim <> ?", "").Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting direct hits: %w", err)
	}
	return n, nil
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
