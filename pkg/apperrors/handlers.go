package apperrors

import (
	"smartadmin_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError переводит ошибку в HTTP-ответ вида {"error": "<message>"}.
// Причина 5xx-ошибок логируется, но клиенту не отдается.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", appErr,
			"code", string(appErr.Code),
			"domain", appErr.Domain,
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
