package handlers

import (
	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/logger"
	"smartadmin_backend/internal/validator"
	"smartadmin_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON привязывает тело запроса и прогоняет валидатор.
// При ошибке сам пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(ctx, "Failed to bind JSON body", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		logger.CtxWarn(ctx, "Validation failed", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}

	return true
}

// BindAndValidateQuery - то же самое для query-параметров
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(ctx, "Failed to bind query", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		logger.CtxWarn(ctx, "Validation failed", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}

	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
