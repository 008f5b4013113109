package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	domainerr "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeInvalidArgument, domainerr.CodeInvalidAmount:
		return http.StatusBadRequest
	case domainerr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domainerr.CodeUnauthorized:
		return http.StatusForbidden
	case domainerr.CodeNotFound:
		return http.StatusNotFound
	case domainerr.CodeDuplicateResource:
		return http.StatusConflict
	case domainerr.CodeInvalidCategory:
		return http.StatusUnprocessableEntity
	case domainerr.CodeOAuthExchange:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response. Server side failures hide their cause.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	_ = c.Error(err)
	status := StatusCode(err)

	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		message = "Internal server error"
		logger.Error("Request failed", coreport.ErrorFields(err, map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}))
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func respondBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidArgument,
		Message: "Invalid request format: " + err.Error(),
	})
}

// callerID reads the authenticated user. The auth middleware guarantees it on /api routes.
func callerID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingToken),
			Message: "Authentication required",
		})
	}
	return userID, ok
}

// dateQuery reads ?date=YYYY-MM-DD, defaulting to today
func dateQuery(c *gin.Context, timeProvider coreport.TimeProvider) (time.Time, error) {
	value := c.Query("date")
	if value == "" {
		return entity.DateOf(timeProvider.Now()), nil
	}
	return entity.ParseDate(value)
}

func idParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerr.ErrInvalidArgument
	}
	return id, nil
}
