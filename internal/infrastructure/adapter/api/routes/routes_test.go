package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/handler"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/routes"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
	usecasemocks "github.com/yozi-budget/yozi-backend/mocks/port/usecase"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newRouter(t *testing.T, opts routes.Options) (*gin.Engine, *usecasemocks.MockAuthUseCase, *usecasemocks.MockCategoryUseCase) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	authUseCase := usecasemocks.NewMockAuthUseCase(t)
	categoryUseCase := usecasemocks.NewMockCategoryUseCase(t)

	h := routes.Handlers{
		Budget:      handler.NewBudgetHandler(usecasemocks.NewMockBudgetUseCase(t), clock, log),
		Transaction: handler.NewTransactionHandler(usecasemocks.NewMockTransactionUseCase(t), log),
		Category:    handler.NewCategoryHandler(categoryUseCase, log),
		Auth:        handler.NewAuthHandler(authUseCase, handler.RedirectConfig{}, log),
		Health:      handler.NewHealthHandler(okPinger{}, log),
	}

	engine := gin.New()
	routes.SetupMiddlewares(engine, log, clock, opts)
	routes.SetupRoutes(engine, h, middleware.Auth(authUseCase, log), opts)
	return engine, authUseCase, categoryUseCase
}

func get(engine *gin.Engine, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	t.Run("should guard /api with the bearer middleware", func(t *testing.T) {
		// Arrange
		engine, _, _ := newRouter(t, routes.Options{})

		// Act
		rec := get(engine, "/api/categories")

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should serve an authenticated request", func(t *testing.T) {
		// Arrange
		engine, authUseCase, categoryUseCase := newRouter(t, routes.Options{})
		authUseCase.EXPECT().Authenticate(mock.Anything, "token").Return(&authport.SessionClaims{UserID: 1}, nil)
		categoryUseCase.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{}, nil)

		// Act
		rec := get(engine, "/api/categories", "Authorization", "Bearer token")

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("should leave the health probe open", func(t *testing.T) {
		// Arrange
		engine, _, _ := newRouter(t, routes.Options{})

		// Act
		rec := get(engine, "/healthz")

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should answer 405 for a wrong method", func(t *testing.T) {
		// Arrange
		engine, _, _ := newRouter(t, routes.Options{})
		req := httptest.NewRequest(http.MethodPatch, "/healthz", nil)
		rec := httptest.NewRecorder()

		// Act
		engine.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("should expose metrics and pprof only when enabled", func(t *testing.T) {
		// Arrange
		registry := prometheus.NewRegistry()
		enabled, _, _ := newRouter(t, routes.Options{
			HTTPMetrics: middleware.NewHTTPMetrics(registry),
			Gatherer:    registry,
			Profiling:   true,
		})
		disabled, _, _ := newRouter(t, routes.Options{})

		// Act
		get(enabled, "/healthz")
		metrics := get(enabled, "/metrics")
		pprofIndex := get(enabled, "/debug/pprof/")

		// Assert
		assert.Equal(t, http.StatusOK, metrics.Code)
		assert.Contains(t, metrics.Body.String(), "yozi_http_requests_total")
		assert.Equal(t, http.StatusOK, pprofIndex.Code)
		assert.Equal(t, http.StatusNotFound, get(disabled, "/metrics").Code)
		assert.Equal(t, http.StatusNotFound, get(disabled, "/debug/pprof/").Code)
	})
}
