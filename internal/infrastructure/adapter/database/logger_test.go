package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	coremocks "github.com/yozi-budget/yozi-backend/mocks/port/core"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "transactions"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "budgets" ("user_id") VALUES (1)`))
	assert.Equal(t, "", extractQueryType(`CREATE INDEX x ON y (z)`))
}

func TestExtractTableName(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "transactions" WHERE user_id = 1`:               "transactions",
		`INSERT INTO "budgets" ("user_id","category_id") VALUES (1,2)`: "budgets",
		`UPDATE "users" SET "nickname"='x' WHERE id = 1`:               "users",
		"SELECT 1":                                                     "",
	}

	for sql, expected := range tests {
		assert.Equal(t, expected, extractTableName(sql), sql)
	}
}

func TestDatabaseLoggerTrace(t *testing.T) {
	t.Run("should record duration and log errors with the request id", func(t *testing.T) {
		// Arrange
		registry := prometheus.NewRegistry()
		metrics := NewMetrics(registry)

		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(core.Duration(5 * time.Millisecond))
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-1" && fields["table"] == "users"
		})).Once()

		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, metrics, "info")
		ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-1")

		// Act
		dbLogger.Trace(ctx, time.Now(), func() (string, int64) {
			return `SELECT * FROM "users" WHERE id = 1`, 0
		}, errors.New("boom"))

		// Assert
		families, err := registry.Gather()
		require.NoError(t, err)
		counts := map[string]uint64{}
		for _, family := range families {
			for _, metric := range family.GetMetric() {
				if h := metric.GetHistogram(); h != nil {
					counts[family.GetName()] += h.GetSampleCount()
				}
				if c := metric.GetCounter(); c != nil {
					counts[family.GetName()] += uint64(c.GetValue())
				}
			}
		}
		assert.Equal(t, uint64(1), counts["yozi_db_query_duration_seconds"])
		assert.Equal(t, uint64(1), counts["yozi_db_query_errors_total"])
	})

	t.Run("should not treat record not found as an error", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(core.Duration(time.Millisecond))
		coreLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, nil, "info")

		// Act
		dbLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
			return `SELECT * FROM "categories"`, 0
		}, gorm.ErrRecordNotFound)
	})

	t.Run("should stay quiet when silent", func(t *testing.T) {
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(core.Duration(time.Second))

		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, nil, "silent")

		dbLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
			return `SELECT 1`, 1
		}, nil)
	})
}
