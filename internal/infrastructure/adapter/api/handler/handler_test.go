package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
)

const testUserID uint64 = 7

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine returns an engine whose routes run as testUserID
func newTestEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		middleware.SetUserID(c, testUserID)
		c.Next()
	})
	return engine
}

var (
	nopLogger = logger.NewNopLogger()
	clock     = timeadapter.NewFixedTimeProvider(testNow)
)

func perform(engine http.Handler, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sameDay(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool {
		return got.Equal(want)
	})
}
