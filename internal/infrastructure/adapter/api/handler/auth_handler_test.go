package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/handler"
	usecasemocks "github.com/yozi-budget/yozi-backend/mocks/port/usecase"
)

const stateCookieName = "yozi_oauth_state"

var testRedirects = handler.RedirectConfig{
	SuccessURL: "http://localhost:3000/login/success",
	ErrorURL:   "http://localhost:3000/login/error",
}

func newAuthRouter(t *testing.T) (*usecasemocks.MockAuthUseCase, *gin.Engine) {
	authUseCase := usecasemocks.NewMockAuthUseCase(t)
	h := handler.NewAuthHandler(authUseCase, testRedirects, nopLogger)

	engine := newTestEngine()
	engine.GET("/auth/:socialType", h.Login)
	engine.GET("/auth/:socialType/callback", h.Callback)
	engine.GET("/api/users/me", h.Me)
	return authUseCase, engine
}

func callback(router http.Handler, target, state string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if state != "" {
		req.AddCookie(&http.Cookie{Name: stateCookieName, Value: state})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) (string, url.Values) {
	t.Helper()
	require.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return location.Scheme + "://" + location.Host + location.Path, location.Query()
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("should redirect to the provider and set the state cookie", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().LoginURL("kakao").Return(&usecase.LoginRedirect{
			URL:   "https://kauth.kakao.com/oauth/authorize?state=s-1",
			State: "s-1",
		}, nil)

		// Act
		rec := perform(router, http.MethodGet, "/auth/kakao", nil)

		// Assert
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://kauth.kakao.com/oauth/authorize?state=s-1", rec.Header().Get("Location"))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, stateCookieName, cookies[0].Name)
		assert.Equal(t, "s-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("should answer 400 for an unsupported provider", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().LoginURL("naver").Return(nil, errs.ErrUnsupportedProvider)

		// Act
		rec := perform(router, http.MethodGet, "/auth/naver", nil)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Callback(t *testing.T) {
	t.Run("should redirect to the success page with the token", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().Login(mock.Anything, "google", "code-1").Return(&usecase.LoginResult{
			Token: "jwt-token",
			User:  &entity.User{ID: testUserID},
		}, nil)

		// Act
		rec := callback(router, "/auth/google/callback?code=code-1&state=s-1", "s-1")

		// Assert
		target, query := redirectQuery(t, rec)
		assert.Equal(t, testRedirects.SuccessURL, target)
		assert.Equal(t, "jwt-token", query.Get("token"))
	})

	t.Run("should redirect to the error page on a state mismatch", func(t *testing.T) {
		// Arrange
		_, router := newAuthRouter(t)

		// Act
		rec := callback(router, "/auth/google/callback?code=code-1&state=forged", "s-1")

		// Assert
		target, query := redirectQuery(t, rec)
		assert.Equal(t, testRedirects.ErrorURL, target)
		assert.Equal(t, "invalid login state", query.Get("message"))
	})

	t.Run("should redirect to the error page without the state cookie", func(t *testing.T) {
		// Arrange
		_, router := newAuthRouter(t)

		// Act
		rec := callback(router, "/auth/google/callback?code=code-1&state=s-1", "")

		// Assert
		target, _ := redirectQuery(t, rec)
		assert.Equal(t, testRedirects.ErrorURL, target)
	})

	t.Run("should redirect to the error page when the exchange fails", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().Login(mock.Anything, "kakao", "expired").
			Return(nil, errs.NewProviderError("KAKAO", "exchange", errors.New("invalid_grant")))

		// Act
		rec := callback(router, "/auth/kakao/callback?code=expired&state=s-1", "s-1")

		// Assert
		target, query := redirectQuery(t, rec)
		assert.Equal(t, testRedirects.ErrorURL, target)
		assert.Contains(t, query.Get("message"), "invalid_grant")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("should return the caller profile", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().GetUser(mock.Anything, testUserID).Return(&entity.User{
			ID:         testUserID,
			SocialType: entity.SocialKakao,
			Nickname:   "Lee",
			Email:      "lee@kakao.com",
			CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}, nil)

		// Act
		rec := perform(router, http.MethodGet, "/api/users/me", nil)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"id":7,"socialType":"KAKAO","nickname":"Lee","email":"lee@kakao.com",
			"createdAt":"2024-01-02T03:04:05Z"
		}`, rec.Body.String())
	})

	t.Run("should answer 404 when the account is gone", func(t *testing.T) {
		// Arrange
		authUseCase, router := newAuthRouter(t)
		authUseCase.EXPECT().GetUser(mock.Anything, testUserID).Return(nil, errs.ErrUserNotFound)

		// Act
		rec := perform(router, http.MethodGet, "/api/users/me", nil)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
