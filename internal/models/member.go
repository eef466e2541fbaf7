package models

type Member struct {
	BaseModel
	Name  string      `gorm:"type:varchar(100);not null" json:"name"`
	Email string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone string      `gorm:"type:varchar(20)" json:"phone"`
	Grade MemberGrade `gorm:"type:varchar(20);default:'STANDARD'" json:"grade"`
	// KakaoID используется для рассылки сообщений участникам
	KakaoID  string `gorm:"type:varchar(100)" json:"kakaoId"`
	Memo     string `gorm:"type:text" json:"memo"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	// Relations
	Payments []Payment `gorm:"foreignKey:MemberID" json:"payments,omitempty"`
}

func (Member) TableName() string {
	return "members"
}
