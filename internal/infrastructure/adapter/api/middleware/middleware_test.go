package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
	coremocks "github.com/yozi-budget/yozi-backend/mocks/port/core"
	usecasemocks "github.com/yozi-budget/yozi-backend/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	newEngine := func(t *testing.T) (*usecasemocks.MockAuthUseCase, *gin.Engine) {
		authUseCase := usecasemocks.NewMockAuthUseCase(t)
		engine := gin.New()
		engine.GET("/api/ping", middleware.Auth(authUseCase, logger.NewNopLogger()), func(c *gin.Context) {
			userID, ok := middleware.UserID(c)
			claims, _ := middleware.Claims(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "ok": ok, "nickname": claims.Nickname})
		})
		return authUseCase, engine
	}

	t.Run("should reject a request without a bearer token", func(t *testing.T) {
		// Arrange
		_, engine := newEngine(t)
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)

		// Act
		rec := serve(engine, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeUnauthenticated, resp.Code)
	})

	t.Run("should reject a non-bearer scheme", func(t *testing.T) {
		// Arrange
		_, engine := newEngine(t)
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		// Act
		rec := serve(engine, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a token the use case refuses", func(t *testing.T) {
		// Arrange
		authUseCase, engine := newEngine(t)
		authUseCase.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, errs.ErrInvalidToken)
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer bad")

		// Act
		rec := serve(engine, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should store the caller for downstream handlers", func(t *testing.T) {
		// Arrange
		authUseCase, engine := newEngine(t)
		authUseCase.EXPECT().Authenticate(mock.Anything, "good").
			Return(&authport.SessionClaims{UserID: 42, Nickname: "Kim"}, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer good")

		// Act
		rec := serve(engine, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":42,"ok":true,"nickname":"Kim"}`, rec.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should turn a panic into a 500 response", func(t *testing.T) {
		// Arrange
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

		engine := gin.New()
		engine.Use(middleware.ErrorHandler(mockLogger))
		engine.GET("/boom", func(*gin.Context) { panic("boom") })

		// Act
		rec := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInternalServer, resp.Code)
	})
}

func TestLogger(t *testing.T) {
	t.Run("should log the request and expose the request id to the context", func(t *testing.T) {
		// Arrange
		mockLogger := coremocks.NewMockLogger(t)
		var logged map[string]any
		mockLogger.EXPECT().Info("Request processed", mock.Anything).Run(func(_ string, fields map[string]any) {
			logged = fields
		}).Once()

		clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
		engine := gin.New()
		engine.Use(requestid.New(), middleware.Logger(mockLogger, clock))

		var seen string
		engine.GET("/items/:id", func(c *gin.Context) {
			seen, _ = c.Request.Context().Value(database.RequestIDKey{}).(string)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/items/3", nil)
		req.Header.Set("X-Request-ID", "req-123")

		// Act
		rec := serve(engine, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", logged["request_id"])
		assert.Equal(t, "/items/:id", logged["route"])
		assert.Equal(t, http.StatusOK, logged["status"])
	})

	t.Run("should log client errors as warnings", func(t *testing.T) {
		// Arrange
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Request processed", mock.Anything).Once()

		engine := gin.New()
		engine.Use(middleware.Logger(mockLogger, timeadapter.NewRealTimeProvider(nil)))
		engine.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

		// Act
		rec := serve(engine, httptest.NewRequest(http.MethodGet, "/bad", nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	t.Run("should count requests by route pattern", func(t *testing.T) {
		// Arrange
		registry := prometheus.NewRegistry()
		metrics := middleware.NewHTTPMetrics(registry)
		engine := gin.New()
		engine.Use(middleware.Metrics(metrics, timeadapter.NewRealTimeProvider(nil)))
		engine.GET("/api/transactions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		// Act
		serve(engine, httptest.NewRequest(http.MethodGet, "/api/transactions/1", nil))
		serve(engine, httptest.NewRequest(http.MethodGet, "/api/transactions/2", nil))
		serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		// Assert
		families, err := registry.Gather()
		require.NoError(t, err)

		counts := map[string]float64{}
		for _, family := range families {
			if family.GetName() != "yozi_http_requests_total" {
				continue
			}
			for _, metric := range family.GetMetric() {
				var route string
				for _, label := range metric.GetLabel() {
					if label.GetName() == "route" {
						route = label.GetValue()
					}
				}
				counts[route] += metric.GetCounter().GetValue()
			}
		}
		assert.Equal(t, float64(2), counts["/api/transactions/:id"])
		assert.Equal(t, float64(1), counts["unmatched"])
	})
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(middleware.CORS([]string{"http://localhost:*", "https://*.yozi.app"}))
	engine.GET("/api/categories", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{name: "should allow a local dev origin", origin: "http://localhost:3000", allowed: true},
		{name: "should allow a subdomain pattern", origin: "https://web.yozi.app", allowed: true},
		{name: "should refuse an unknown origin", origin: "https://evil.example", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodOptions, "/api/categories", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)

			// Act
			rec := serve(engine, req)

			// Assert
			if tt.allowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

