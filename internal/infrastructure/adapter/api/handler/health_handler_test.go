package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/handler"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name     string
		ping     pingFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "should report ok when the database answers",
			ping:     func(context.Context) error { return nil },
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok","database":"up"}`,
		},
		{
			name:     "should report degraded when the ping fails",
			ping:     func(context.Context) error { return errors.New("connection refused") },
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"degraded","database":"down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			engine := newTestEngine()
			engine.GET("/healthz", handler.NewHealthHandler(tt.ping, nopLogger).Health)

			// Act
			rec := perform(engine, http.MethodGet, "/healthz", nil)

			// Assert
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
