package ws

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "smartadmin_backend/internal/models/chat"
	"smartadmin_backend/internal/services/dto"
)

// fakeChatService подменяет хранилище в тестах менеджера
type fakeChatService struct {
	history    []chatmodels.Message
	appended   []chatmodels.Message
	appendErr  error
	markedRead []string
}

func (f *fakeChatService) ListRooms() (*dto.ListChatRoomsResponse, error) {
	return &dto.ListChatRoomsResponse{}, nil
}

func (f *fakeChatService) History(roomID string) ([]chatmodels.Message, error) {
	return f.history, nil
}

func (f *fakeChatService) Append(message *chatmodels.Message) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, *message)
	return nil
}

func (f *fakeChatService) MarkRead(roomID string) error {
	f.markedRead = append(f.markedRead, roomID)
	return nil
}

// testClient создаёт клиента без реального соединения: события
// читаются прямо из буферизованного канала send
func testClient(m *Manager, id string) *Client {
	c := &Client{
		ID:      id,
		send:    make(chan OutboundEvent, 16),
		manager: m,
	}
	m.clients[c] = true
	return c
}

func drain(c *Client) []OutboundEvent {
	var out []OutboundEvent
	for {
		select {
		case evt := <-c.send:
			out = append(out, evt)
		default:
			return out
		}
	}
}

func TestManager_Join_PushesHistoryToJoinerOnly(t *testing.T) {
	svc := &fakeChatService{history: []chatmodels.Message{
		{RoomID: "room-a", Message: "old message"},
	}}
	m := NewManager(svc)

	joiner := testClient(m, "c1")
	bystander := testClient(m, "c2")

	m.handleJoin(joiner, "room-a")

	events := drain(joiner)
	require.Len(t, events, 1)
	assert.Equal(t, EventPreviousMessages, events[0].Event)
	assert.Empty(t, drain(bystander))
}

// Рассылка достигает ровно подписчиков комнаты, включая отправителя
func TestManager_Send_BroadcastsToRoomSubscribers(t *testing.T) {
	svc := &fakeChatService{}
	m := NewManager(svc)

	sender := testClient(m, "sender")
	peer := testClient(m, "peer")
	outsider := testClient(m, "outsider")

	m.handleJoin(sender, "room-a")
	m.handleJoin(peer, "room-a")
	m.handleJoin(outsider, "room-b")
	drain(sender)
	drain(peer)
	drain(outsider)

	m.handleSend(SendMessagePayload{
		RoomID:     "room-a",
		SenderType: "USER",
		SenderName: "Alice",
		Message:    "hello",
	})

	require.Len(t, svc.appended, 1)

	senderEvents := drain(sender)
	peerEvents := drain(peer)
	require.Len(t, senderEvents, 1)
	require.Len(t, peerEvents, 1)
	assert.Equal(t, EventNewMessage, senderEvents[0].Event)
	assert.Equal(t, EventNewMessage, peerEvents[0].Event)
	assert.Empty(t, drain(outsider))
}

// Если сохранение не удалось, сообщение не рассылается никому
func TestManager_Send_StoreFailureSuppressesBroadcast(t *testing.T) {
	svc := &fakeChatService{appendErr: errors.New("db down")}
	m := NewManager(svc)

	client := testClient(m, "c1")
	m.handleJoin(client, "room-a")
	drain(client)

	m.handleSend(SendMessagePayload{RoomID: "room-a", SenderType: "USER", SenderName: "A", Message: "x"})

	assert.Empty(t, drain(client))
	assert.Empty(t, svc.appended)
}

func TestManager_MarkRead_BroadcastsReceipt(t *testing.T) {
	svc := &fakeChatService{}
	m := NewManager(svc)

	client := testClient(m, "c1")
	m.handleJoin(client, "room-a")
	drain(client)

	m.handleMarkRead("room-a")

	assert.Equal(t, []string{"room-a"}, svc.markedRead)
	events := drain(client)
	require.Len(t, events, 1)
	assert.Equal(t, EventMessagesRead, events[0].Event)
	assert.Equal(t, "room-a", events[0].Data)
}

// Отключение снимает все подписки клиента
func TestManager_RemoveClient_ReleasesSubscriptions(t *testing.T) {
	svc := &fakeChatService{}
	m := NewManager(svc)

	client := testClient(m, "c1")
	m.handleJoin(client, "room-a")
	m.handleJoin(client, "room-b")
	drain(client)

	m.removeClient(client)

	assert.Empty(t, m.rooms)
	assert.Empty(t, m.clientRooms)
	assert.Empty(t, m.clients)

	// Канал закрыт менеджером
	_, open := <-client.send
	assert.False(t, open)
}

// join_room от выселенного клиента игнорируется: его канал закрыт,
// и повторная подписка уронила бы цикл Run
func TestManager_JoinAfterEviction_Ignored(t *testing.T) {
	svc := &fakeChatService{history: []chatmodels.Message{
		{RoomID: "room-a", Message: "old"},
	}}
	m := NewManager(svc)

	client := testClient(m, "c1")
	m.handleJoin(client, "room-a")
	m.removeClient(client)

	assert.NotPanics(t, func() {
		m.dispatch(inboundEvent{
			client:   client,
			envelope: Envelope{Event: EventJoinRoom, Data: json.RawMessage(`"room-a"`)},
		})
	})

	// Клиент не вернулся в реестр и не подписан заново
	assert.Empty(t, m.clients)
	assert.Empty(t, m.rooms)
	assert.Empty(t, m.clientRooms)
}

// Повторный join в другую комнату не теряет прежнюю подписку
func TestManager_Rejoin_KeepsBothSubscriptions(t *testing.T) {
	svc := &fakeChatService{}
	m := NewManager(svc)

	client := testClient(m, "c1")
	m.handleJoin(client, "room-a")
	m.handleJoin(client, "room-b")
	drain(client)

	m.handleSend(SendMessagePayload{RoomID: "room-a", SenderType: "ADMIN", SenderName: "M", Message: "1"})
	m.handleSend(SendMessagePayload{RoomID: "room-b", SenderType: "ADMIN", SenderName: "M", Message: "2"})

	events := drain(client)
	assert.Len(t, events, 2)
}
