package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/models/chat"
)

// registerCustomRules регистрирует кастомные правила для enum-полей моделей.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила — критическая ошибка запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-member-grade", validateMemberGrade)
	mustRegister("is-payment-source", validatePaymentSource)
	mustRegister("is-payment-status", validatePaymentStatus)
	mustRegister("is-review-source", validateReviewSource)
	mustRegister("is-cost-category", validateCostCategory)
	mustRegister("is-sender-type", validateSenderType)
}

// Пустые значения пропускаем: за обязательность отвечает 'required'.

func validateMemberGrade(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, g := range models.ValidMemberGrades {
		if value == string(g) {
			return true
		}
	}
	return false
}

func validatePaymentSource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, s := range models.ValidPaymentSources {
		if value == string(s) {
			return true
		}
	}
	return false
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, s := range models.ValidPaymentStatuses {
		if value == string(s) {
			return true
		}
	}
	return false
}

func validateReviewSource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, s := range models.ValidReviewSources {
		if value == string(s) {
			return true
		}
	}
	return false
}

func validateCostCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, c := range models.ValidCostCategories {
		if value == string(c) {
			return true
		}
	}
	return false
}

func validateSenderType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return chat.ValidSenderType(chat.SenderType(value))
}
