package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/yozi-budget/yozi-backend/internal/domain/error"
	authport "github.com/yozi-budget/yozi-backend/internal/domain/port/auth"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
)

const (
	userIDKey  = "yozi.userID"
	claimsKey  = "yozi.claims"
	bearerAuth = "Bearer "
)

// Auth requires a valid bearer session token and stores the caller in the context
func Auth(authUseCase usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, bearerAuth)
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthenticated(c, domainerr.ErrMissingToken, "Missing bearer token")
			return
		}

		claims, err := authUseCase.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Rejected session token", coreport.ErrorFields(err, map[string]any{
				"path": c.Request.URL.Path,
			}))
			abortUnauthenticated(c, err, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, err error, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// UserID returns the authenticated caller id
func UserID(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok && id != 0
}

// Claims returns the verified session claims
func Claims(c *gin.Context) (*authport.SessionClaims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*authport.SessionClaims)
	return claims, ok
}

// SetUserID stores a caller id, used by tests and trusted internal routes
func SetUserID(c *gin.Context, userID uint64) {
	c.Set(userIDKey, userID)
}
