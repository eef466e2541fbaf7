package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterGinBindings добавляет кастомные правила в валидатор gin,
// чтобы теги binding в DTO знали про enum-проверки.
// Вызывается один раз при старте приложения.
func RegisterGinBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(v)
	}
}
