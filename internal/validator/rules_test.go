package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type gradeProbe struct {
	Grade string `json:"grade" validate:"omitempty,is-member-grade"`
}

type costProbe struct {
	Category string `json:"category" validate:"required,is-cost-category"`
}

type senderProbe struct {
	SenderType string `json:"senderType" validate:"required,is-sender-type"`
}

func TestCustomRules_MemberGrade(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&gradeProbe{Grade: "PREMIUM"}))
	assert.NoError(t, v.Validate(&gradeProbe{Grade: ""})) // пусто - за обязательность отвечает required
	assert.Error(t, v.Validate(&gradeProbe{Grade: "GOLD"}))
}

func TestCustomRules_CostCategory(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&costProbe{Category: "KMONG_FEE"}))
	assert.Error(t, v.Validate(&costProbe{Category: "FOOD"}))
	assert.Error(t, v.Validate(&costProbe{Category: ""}))
}

func TestCustomRules_SenderType(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&senderProbe{SenderType: "USER"}))
	assert.NoError(t, v.Validate(&senderProbe{SenderType: "ADMIN"}))
	assert.Error(t, v.Validate(&senderProbe{SenderType: "BOT"}))
}

// Ошибки валидации отдают имена полей из json-тегов
func TestValidationError_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&senderProbe{SenderType: ""})
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "senderType")
}
