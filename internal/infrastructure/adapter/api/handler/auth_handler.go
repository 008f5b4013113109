package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainerr "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
)

const (
	stateCookie       = "yozi_oauth_state"
	stateCookieMaxAge = 300
)

// RedirectConfig holds the frontend pages a finished login lands on
type RedirectConfig struct {
	SuccessURL   string
	ErrorURL     string
	SecureCookie bool
}

// AuthHandler drives the OAuth redirect flow and exposes the caller's profile
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	redirects   RedirectConfig
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, redirects RedirectConfig, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		redirects:   redirects,
		logger:      logger,
	}
}

// Login handles GET /auth/:socialType
func (h *AuthHandler) Login(c *gin.Context) {
	redirect, err := h.authUseCase.LoginURL(c.Param("socialType"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, redirect.State, stateCookieMaxAge, "/auth", "", h.redirects.SecureCookie, true)
	c.Redirect(http.StatusFound, redirect.URL)
}

// Callback handles GET /auth/:socialType/callback?code=&state=
func (h *AuthHandler) Callback(c *gin.Context) {
	provider := c.Param("socialType")

	if msg := c.Query("error"); msg != "" {
		h.fail(c, provider, "provider denied the login: "+msg)
		return
	}

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		h.fail(c, provider, "invalid login state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/auth", "", h.redirects.SecureCookie, true)

	result, err := h.authUseCase.Login(c.Request.Context(), provider, c.Query("code"))
	if err != nil {
		h.logger.Warn("Social login failed", coreport.ErrorFields(err, map[string]any{
			"provider":   provider,
			"error_code": domainerr.ErrorCode(err),
		}))
		h.fail(c, provider, err.Error())
		return
	}

	c.Redirect(http.StatusFound, withQuery(h.redirects.SuccessURL, "token", result.Token))
}

func (h *AuthHandler) fail(c *gin.Context, provider, message string) {
	h.logger.Debug("Redirecting to login error page", map[string]any{
		"provider": provider,
		"message":  message,
	})
	c.Redirect(http.StatusFound, withQuery(h.redirects.ErrorURL, "message", message))
}

// Me handles GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.authUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// withQuery appends key=value to target, keeping any existing query
func withQuery(target, key, value string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

