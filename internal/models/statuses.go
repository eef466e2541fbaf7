package models

type AdminRole string
type MemberGrade string
type PaymentSource string
type PaymentStatus string
type ReviewSource string
type CostCategory string

const (
	AdminRoleSuper AdminRole = "SUPER_ADMIN"
	AdminRoleAdmin AdminRole = "ADMIN"

	MemberGradeStandard MemberGrade = "STANDARD"
	MemberGradeDeluxe   MemberGrade = "DELUXE"
	MemberGradePremium  MemberGrade = "PREMIUM"

	PaymentSourceKmong PaymentSource = "KMONG"
	PaymentSourceToss  PaymentSource = "TOSS"

	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"

	ReviewSourceKmong   ReviewSource = "KMONG"
	ReviewSourceWebsite ReviewSource = "WEBSITE"

	CostCategoryPaymentFee CostCategory = "PAYMENT_FEE"
	CostCategoryKmongFee   CostCategory = "KMONG_FEE"
	CostCategoryServer     CostCategory = "SERVER"
	CostCategoryDomain     CostCategory = "DOMAIN"
	CostCategoryMarketing  CostCategory = "MARKETING"
	CostCategoryEtc        CostCategory = "ETC"
)

// Допустимые значения для кастомных правил валидатора.
var ValidMemberGrades = []MemberGrade{MemberGradeStandard, MemberGradeDeluxe, MemberGradePremium}

var ValidPaymentSources = []PaymentSource{PaymentSourceKmong, PaymentSourceToss}

var ValidPaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded}

var ValidReviewSources = []ReviewSource{ReviewSourceKmong, ReviewSourceWebsite}

var ValidCostCategories = []CostCategory{
	CostCategoryPaymentFee, CostCategoryKmongFee, CostCategoryServer,
	CostCategoryDomain, CostCategoryMarketing, CostCategoryEtc,
}
