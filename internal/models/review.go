package models

import "time"

type Review struct {
	BaseModel
	MemberID string       `gorm:"type:uuid;index" json:"memberId"`
	Rating   int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Content  string       `gorm:"type:text;not null" json:"content"`
	Source   ReviewSource `gorm:"type:varchar(20);not null" json:"source"`
	// Ответ менеджера, отображается на сайте рядом с отзывом
	AdminReply string     `gorm:"type:text" json:"adminReply"`
	RepliedAt  *time.Time `json:"repliedAt"`
	IsVisible  bool       `gorm:"default:true" json:"isVisible"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
