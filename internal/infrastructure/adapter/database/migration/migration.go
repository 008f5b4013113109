package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	steps            []Step
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager with the built-in steps
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		steps:            Steps(),
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// CurrentSchemaVersion is the version of the last built-in step
func CurrentSchemaVersion() string {
	steps := Steps()
	return steps[len(steps)-1].Version
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	target := m.steps[len(m.steps)-1].Version
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": target,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied schema versions", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version": step.Version,
			"details": step.Details,
		})

		if err := step.Run(ctx, m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", step.Version, err)
		}

		if err := m.setVersion(ctx, step.Version, step.Details); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": step.Version,
			})
			return err
		}
	}

	if m.db.Dialector.Name() == "postgres" {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			return err
		}
		m.advancedIndexMgr.ApplyPerformanceTweaks(ctx)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": target,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []model.MigrationVersion
	if err := m.db.WithContext(ctx).Find(&versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}
	return applied, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}
