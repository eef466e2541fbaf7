package services

import (
	"fmt"
	"sort"
	"time"

	chatmodels "smartadmin_backend/internal/models/chat"
	chatrepo "smartadmin_backend/internal/repositories/chat"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type ChatService interface {
	ListRooms() (*dto.ListChatRoomsResponse, error)
	History(roomID string) ([]chatmodels.Message, error)
	Append(message *chatmodels.Message) error
	MarkRead(roomID string) error
}

type chatService struct {
	messageRepo   chatrepo.MessageRepository
	historyLimit  int
	roomScanLimit int
}

func NewChatService(messageRepo chatrepo.MessageRepository, historyLimit, roomScanLimit int) ChatService {
	return &chatService{
		messageRepo:   messageRepo,
		historyLimit:  historyLimit,
		roomScanLimit: roomScanLimit,
	}
}

func roomLabel(roomID string) string {
	return fmt.Sprintf("Room %s", roomID)
}

// ListRooms строит список диалогов в два прохода: свежие сообщения задают
// карточки комнат, затем непрочитанные перекрывают счётчики. Комната с
// непрочитанными сообщениями попадает в список, даже если её последняя
// активность выпала из окна сканирования.
func (s *chatService) ListRooms() (*dto.ListChatRoomsResponse, error) {
	latest, err := s.messageRepo.RecentPerRoom(s.roomScanLimit)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	byRoom := make(map[string]*dto.ChatRoomSummary, len(latest))
	for roomID, msg := range latest {
		userName := roomLabel(roomID)
		if msg.SenderType == chatmodels.SenderUser {
			userName = msg.SenderName
		}
		byRoom[roomID] = &dto.ChatRoomSummary{
			ID:          roomID,
			UserName:    userName,
			LastMessage: msg.Message,
			UpdatedAt:   msg.CreatedAt,
			UnreadCount: 0,
		}
	}

	unread, err := s.messageRepo.UnreadCountsByRoom(chatmodels.SenderUser)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	for roomID, cnt := range unread {
		if summary, ok := byRoom[roomID]; ok {
			summary.UnreadCount = cnt
			continue
		}
		// Непрочитанное сообщение старше окна сканирования:
		// синтезируем карточку без текста последнего сообщения
		byRoom[roomID] = &dto.ChatRoomSummary{
			ID:          roomID,
			UserName:    roomLabel(roomID),
			LastMessage: "",
			UpdatedAt:   time.Now(),
			UnreadCount: cnt,
		}
	}

	rooms := make([]dto.ChatRoomSummary, 0, len(byRoom))
	for _, summary := range byRoom {
		rooms = append(rooms, *summary)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt)
	})

	return &dto.ListChatRoomsResponse{Rooms: rooms}, nil
}

// History - последние historyLimit сообщений комнаты, старые первыми
func (s *chatService) History(roomID string) ([]chatmodels.Message, error) {
	messages, err := s.messageRepo.ListByRoom(roomID, s.historyLimit)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return messages, nil
}

func (s *chatService) Append(message *chatmodels.Message) error {
	if !chatmodels.ValidSenderType(message.SenderType) {
		return apperrors.ValidationError("Invalid sender type")
	}
	if err := s.messageRepo.Create(message); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

// MarkRead помечает прочитанными входящие сообщения комнаты
func (s *chatService) MarkRead(roomID string) error {
	if err := s.messageRepo.MarkRead(roomID, chatmodels.SenderUser); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}
