// util/http_util.go
package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
)

// UserIDKey is the gin context key the auth middleware stores the caller under.
const UserIDKey = "userID"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
	}
	if code >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDomainError maps err to its HTTP status. Client errors carry the
// error text; server errors only carry message.
func RespondWithDomainError(c *gin.Context, message string, err error) {
	code := StatusForError(err)
	if code < http.StatusInternalServerError {
		message = err.Error()
	}
	RespondWithError(c, code, message, err)
}

func StatusForError(err error) int {
	switch {
	case ed_errors.Is(err, ed_errors.ErrNotFound):
		return http.StatusNotFound
	case ed_errors.Is(err, ed_errors.ErrConflict):
		return http.StatusConflict
	case ed_errors.Is(err, ed_errors.ErrInvalidSchema),
		ed_errors.Is(err, ed_errors.ErrInvalidInput),
		ed_errors.Is(err, ed_errors.ErrValidationFailed):
		return http.StatusBadRequest
	case ed_errors.Is(err, ed_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case ed_errors.Is(err, ed_errors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func GetUserIDFromContext(c *gin.Context) (int64, error) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, ed_errors.ErrUnauthorized
	}
	id, ok := userID.(int64)
	if !ok || id <= 0 {
		return 0, ed_errors.ErrUnauthorized
	}
	return id, nil
}
