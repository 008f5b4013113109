package time

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock,
// expressed in a fixed location
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a time provider bound to loc; nil means UTC
func NewRealTimeProvider(loc *time.Location) *RealTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time in the provider's location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Location returns the location that decides the calendar date
func (p *RealTimeProvider) Location() *time.Location {
	return p.location
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// FixedTimeProvider always reports the same instant. It backs tests and
// one-off tooling that must reproduce a specific day.
type FixedTimeProvider struct {
	RealTimeProvider
	now time.Time
}

// NewFixedTimeProvider returns a provider stuck at now, in now's location
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{
		RealTimeProvider: RealTimeProvider{location: now.Location()},
		now:              now,
	}
}

// Now returns the fixed instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Since measures against the fixed instant
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.now.Sub(t))
}
