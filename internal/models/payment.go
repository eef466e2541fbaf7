package models

import "time"

type Payment struct {
	BaseModel
	MemberID    string        `gorm:"type:uuid;not null;index" json:"memberId"`
	PackageName string        `gorm:"type:varchar(50);not null" json:"packageName"`
	Amount      int           `gorm:"not null;check:amount >= 0" json:"amount"`
	Source      PaymentSource `gorm:"type:varchar(20);not null" json:"source"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	// Номер заказа и ключ платежа из Toss Payments
	OrderID    string     `gorm:"type:varchar(100);uniqueIndex" json:"orderId"`
	PaymentKey string     `gorm:"type:varchar(200)" json:"paymentKey"`
	PaidAt     *time.Time `json:"paidAt"`
	RefundedAt *time.Time `json:"refundedAt"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
