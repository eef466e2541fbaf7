package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "smartadmin_backend/internal/models/chat"
)

func msgAt(roomID string, sender chatmodels.SenderType, name, text string, at time.Time) chatmodels.Message {
	return chatmodels.Message{
		RoomID:     roomID,
		SenderType: sender,
		SenderName: name,
		Message:    text,
		CreatedAt:  at,
	}
}

// TestChatService_ListRooms_Labels - имя комнаты берётся из последнего
// сообщения, если его написал пользователь, иначе ставится заглушка
func TestChatService_ListRooms_Labels(t *testing.T) {
	repo := newFakeMessageRepo()
	now := time.Now()
	repo.recent["room-a"] = msgAt("room-a", chatmodels.SenderUser, "Alice", "hello", now)
	repo.recent["room-b"] = msgAt("room-b", chatmodels.SenderAdmin, "Manager", "reply", now.Add(-time.Minute))

	svc := NewChatService(repo, 100, 1000)
	resp, err := svc.ListRooms()
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	byID := make(map[string]string)
	for _, room := range resp.Rooms {
		byID[room.ID] = room.UserName
	}
	assert.Equal(t, "Alice", byID["room-a"])
	assert.Equal(t, "Room room-b", byID["room-b"])
}

// TestChatService_ListRooms_UnreadOverwrite - счётчик непрочитанных
// перекрывает нулевое значение из первого прохода
func TestChatService_ListRooms_UnreadOverwrite(t *testing.T) {
	repo := newFakeMessageRepo()
	repo.recent["room-a"] = msgAt("room-a", chatmodels.SenderUser, "Alice", "hi", time.Now())
	repo.unread["room-a"] = 3

	svc := NewChatService(repo, 100, 1000)
	resp, err := svc.ListRooms()
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(3), resp.Rooms[0].UnreadCount)
	assert.Equal(t, "hi", resp.Rooms[0].LastMessage)
}

// TestChatService_ListRooms_SynthesizedUnreadRoom - комната с непрочитанными
// сообщениями вне окна сканирования всё равно попадает в список
func TestChatService_ListRooms_SynthesizedUnreadRoom(t *testing.T) {
	repo := newFakeMessageRepo()
	repo.recent["room-hot"] = msgAt("room-hot", chatmodels.SenderUser, "Bob", "recent", time.Now())
	repo.unread["room-42"] = 2 // комнаты нет в recent

	svc := NewChatService(repo, 100, 1000)
	resp, err := svc.ListRooms()
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	var stale *string
	for i := range resp.Rooms {
		if resp.Rooms[i].ID == "room-42" {
			stale = &resp.Rooms[i].LastMessage
			assert.Equal(t, int64(2), resp.Rooms[i].UnreadCount)
			assert.Equal(t, "Room room-42", resp.Rooms[i].UserName)
		}
	}
	require.NotNil(t, stale, "комната с непрочитанными должна быть в списке")
	assert.Empty(t, *stale)
}

// TestChatService_ListRooms_SortedByActivity - сортировка по убыванию updatedAt
func TestChatService_ListRooms_SortedByActivity(t *testing.T) {
	repo := newFakeMessageRepo()
	now := time.Now()
	repo.recent["old"] = msgAt("old", chatmodels.SenderUser, "A", "1", now.Add(-time.Hour))
	repo.recent["mid"] = msgAt("mid", chatmodels.SenderUser, "B", "2", now.Add(-time.Minute))
	repo.recent["new"] = msgAt("new", chatmodels.SenderUser, "C", "3", now)

	svc := NewChatService(repo, 100, 1000)
	resp, err := svc.ListRooms()
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 3)
	assert.Equal(t, "new", resp.Rooms[0].ID)
	assert.Equal(t, "mid", resp.Rooms[1].ID)
	assert.Equal(t, "old", resp.Rooms[2].ID)
}

func TestChatService_Append_RejectsUnknownSender(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewChatService(repo, 100, 1000)

	err := svc.Append(&chatmodels.Message{
		RoomID:     "room-a",
		SenderType: "BOT",
		SenderName: "x",
		Message:    "y",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

// Пустой текст допустим на уровне хранилища
func TestChatService_Append_AllowsEmptyBody(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewChatService(repo, 100, 1000)

	err := svc.Append(&chatmodels.Message{
		RoomID:     "room-a",
		SenderType: chatmodels.SenderUser,
		SenderName: "Alice",
		Message:    "",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}
