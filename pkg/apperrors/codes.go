package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Общие
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeStorageError     ErrorCode = "STORAGE_ERROR"

	// Аутентификация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"

	// Домены
	CodeMemberNotFound  ErrorCode = "MEMBER_NOT_FOUND"
	CodeReviewNotFound  ErrorCode = "REVIEW_NOT_FOUND"
	CodePackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	CodeAdminExists     ErrorCode = "ADMIN_EXISTS"
)
