package dto

import "time"

// ChatRoomSummary - строка в списке диалогов поддержки
type ChatRoomSummary struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	LastMessage string    `json:"lastMessage"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UnreadCount int64     `json:"unreadCount"`
}

// ListChatRoomsResponse - справочник комнат, отсортирован по активности
type ListChatRoomsResponse struct {
	Rooms []ChatRoomSummary `json:"rooms"`
}
