package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	t.Run("should report now in the configured location", func(t *testing.T) {
		seoul := time.FixedZone("KST", 9*60*60)
		provider := NewRealTimeProvider(seoul)

		assert.Equal(t, seoul, provider.Location())
		assert.Equal(t, seoul, provider.Now().Location())
	})

	t.Run("should default to UTC", func(t *testing.T) {
		provider := NewRealTimeProvider(nil)

		assert.Equal(t, time.UTC, provider.Location())
	})

	t.Run("should cancel context after timeout", func(t *testing.T) {
		provider := NewRealTimeProvider(nil)

		ctx, cancel := provider.WithTimeout(context.Background(), core.Millisecond)
		defer cancel()

		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	})
}

func TestFixedTimeProvider(t *testing.T) {
	now := time.Date(2024, 3, 31, 23, 30, 0, 0, time.FixedZone("KST", 9*60*60))
	provider := NewFixedTimeProvider(now)

	assert.Equal(t, now, provider.Now())
	assert.Equal(t, now.Location(), provider.Location())
	assert.Equal(t, core.Duration(time.Hour), provider.Since(now.Add(-time.Hour)))
}
