package chat

import (
	"time"

	"gorm.io/gorm"

	chatmodels "smartadmin_backend/internal/models/chat"
)

type MessageRepository interface {
	Create(message *chatmodels.Message) error
	ListByRoom(roomID string, limit int) ([]chatmodels.Message, error)
	MarkRead(roomID string, senderType chatmodels.SenderType) error
	UnreadCountsByRoom(senderType chatmodels.SenderType) (map[string]int64, error)
	RecentPerRoom(maxScanned int) (map[string]chatmodels.Message, error)
	CountUnreadRooms(senderType chatmodels.SenderType) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create сохраняет новое сообщение; created_at проставляет сервер
func (r *messageRepository) Create(message *chatmodels.Message) error {
	return r.db.Create(message).Error
}

// ListByRoom возвращает последние limit сообщений комнаты,
// по возрастанию created_at (старые первыми).
func (r *messageRepository) ListByRoom(roomID string, limit int) ([]chatmodels.Message, error) {
	var messages []chatmodels.Message

	err := r.db.
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Разворачиваем порядок: выборка шла от новых к старым
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkRead помечает прочитанными все непрочитанные сообщения указанного
// отправителя в комнате. Идемпотентно: повторный вызов не трогает строк.
func (r *messageRepository) MarkRead(roomID string, senderType chatmodels.SenderType) error {
	return r.db.Model(&chatmodels.Message{}).
		Where("room_id = ? AND sender_type = ? AND is_read = ?", roomID, senderType, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

// UnreadCountsByRoom - количество непрочитанных сообщений отправителя по комнатам
func (r *messageRepository) UnreadCountsByRoom(senderType chatmodels.SenderType) (map[string]int64, error) {
	var rows []struct {
		RoomID string
		Cnt    int64
	}

	err := r.db.Model(&chatmodels.Message{}).
		Select("room_id, COUNT(id) AS cnt").
		Where("sender_type = ? AND is_read = ?", senderType, false).
		Group("room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RoomID] = row.Cnt
	}
	return counts, nil
}

// RecentPerRoom сканирует maxScanned последних сообщений по всей системе и
// оставляет первое увиденное (самое свежее) сообщение каждой комнаты.
// Это эвристика: комната, чья последняя активность старше окна сканирования,
// в результат не попадёт.
func (r *messageRepository) RecentPerRoom(maxScanned int) (map[string]chatmodels.Message, error) {
	var messages []chatmodels.Message

	err := r.db.
		Order("created_at DESC").
		Limit(maxScanned).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	latest := make(map[string]chatmodels.Message)
	for _, msg := range messages {
		if _, ok := latest[msg.RoomID]; !ok {
			latest[msg.RoomID] = msg
		}
	}
	return latest, nil
}

// CountUnreadRooms - количество комнат с непрочитанными сообщениями отправителя
func (r *messageRepository) CountUnreadRooms(senderType chatmodels.SenderType) (int64, error) {
	var count int64
	err := r.db.Model(&chatmodels.Message{}).
		Where("sender_type = ? AND is_read = ?", senderType, false).
		Distinct("room_id").
		Count(&count).Error
	return count, err
}
