package database

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// TestDBManager provides an in-memory sqlite database with the full schema
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects an in-memory database and migrates it.
// The connection is closed when the test ends.
func NewTestDBManager(t testing.TB, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Database = ":memory:"
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.QueryTimeout = 5 * time.Second

	manager := NewManager(config, logger, timeProvider, nil)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the migrated database handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// TruncateAllTables empties every domain table
func (m *TestDBManager) TruncateAllTables(t testing.TB) {
	t.Helper()

	for _, table := range []any{&model.Budget{}, &model.Transaction{}, &model.Category{}, &model.User{}} {
		if err := m.DB().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}

// CreateTestCategory inserts a category row and returns its id
func (m *TestDBManager) CreateTestCategory(t testing.TB, categoryType, displayName string) uint64 {
	t.Helper()

	category := model.Category{Type: categoryType, DisplayName: displayName}
	if err := m.DB().Create(&category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return category.ID
}

// CreateTestUser inserts a user row and returns its id
func (m *TestDBManager) CreateTestUser(t testing.TB, socialID, socialType, nickname string) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		SocialID:   socialID,
		SocialType: socialType,
		Nickname:   nickname,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}
