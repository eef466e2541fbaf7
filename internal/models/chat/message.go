package chat

import "time"

type SenderType string

const (
	SenderUser  SenderType = "USER"
	SenderAdmin SenderType = "ADMIN"
)

// Message — одно сообщение чата поддержки. Строка неизменяема после
// создания, кроме перехода IsRead false→true с простановкой ReadAt.
type Message struct {
	ID string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	// RoomID — идентификатор комнаты (обычно memberId или session id)
	RoomID     string     `gorm:"type:varchar(50);not null;index" json:"roomId"`
	SenderType SenderType `gorm:"type:varchar(20);not null" json:"senderType"`
	SenderName string     `gorm:"type:varchar(100);not null" json:"senderName"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	IsRead     bool       `gorm:"default:false" json:"isRead"`
	ReadAt     *time.Time `json:"readAt"`
	CreatedAt  time.Time  `gorm:"default:now();index" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Message) TableName() string {
	return "chat_messages"
}

func ValidSenderType(s SenderType) bool {
	return s == SenderUser || s == SenderAdmin
}
