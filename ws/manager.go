package ws

import (
	"encoding/json"

	"smartadmin_backend/internal/logger"
	chatmodels "smartadmin_backend/internal/models/chat"
	"smartadmin_backend/internal/services"
)

// inboundEvent - событие клиента, ждущее обработки в цикле Run
type inboundEvent struct {
	client   *Client
	envelope Envelope
}

// Manager владеет реестром подключений и подписок на комнаты.
// Весь доступ к состоянию идёт из единственной горутины Run,
// поэтому пара "сохранить + разослать" для каждого сообщения
// выполняется атомарно относительно других отправок.
type Manager struct {
	clients     map[*Client]bool
	rooms       map[string]map[*Client]bool
	clientRooms map[*Client]map[string]bool

	register   chan *Client
	unregister chan *Client
	events     chan inboundEvent

	chatService services.ChatService
}

func NewManager(chatService services.ChatService) *Manager {
	return &Manager{
		clients:     make(map[*Client]bool),
		rooms:       make(map[string]map[*Client]bool),
		clientRooms: make(map[*Client]map[string]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		events:      make(chan inboundEvent),
		chatService: chatService,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.clients[client] = true
			logger.Info("ws client connected", "client_id", client.ID, "total", len(m.clients))

		case client := <-m.unregister:
			m.removeClient(client)

		case evt := <-m.events:
			m.dispatch(evt)
		}
	}
}

func (m *Manager) dispatch(evt inboundEvent) {
	// Канал выселенного клиента уже закрыт: его события игнорируем,
	// иначе push в handleJoin уронит цикл Run
	if !m.clients[evt.client] {
		return
	}

	switch evt.envelope.Event {
	case EventJoinRoom:
		var roomID string
		if err := json.Unmarshal(evt.envelope.Data, &roomID); err != nil {
			logger.WithError(err).Warn("invalid join_room payload", "client_id", evt.client.ID)
			return
		}
		m.handleJoin(evt.client, roomID)

	case EventSendMessage:
		var payload SendMessagePayload
		if err := json.Unmarshal(evt.envelope.Data, &payload); err != nil {
			logger.WithError(err).Warn("invalid send_message payload", "client_id", evt.client.ID)
			return
		}
		m.handleSend(payload)

	case EventMarkRead:
		var roomID string
		if err := json.Unmarshal(evt.envelope.Data, &roomID); err != nil {
			logger.WithError(err).Warn("invalid mark_read payload", "client_id", evt.client.ID)
			return
		}
		m.handleMarkRead(roomID)

	default:
		logger.Warn("unhandled ws event", "event", evt.envelope.Event, "client_id", evt.client.ID)
	}
}

// handleJoin подписывает клиента на комнату и отдаёт ему историю.
// История уходит только этому соединению, не в комнату.
func (m *Manager) handleJoin(client *Client, roomID string) {
	if roomID == "" {
		return
	}

	if m.rooms[roomID] == nil {
		m.rooms[roomID] = make(map[*Client]bool)
	}
	m.rooms[roomID][client] = true

	if m.clientRooms[client] == nil {
		m.clientRooms[client] = make(map[string]bool)
	}
	m.clientRooms[client][roomID] = true

	history, err := m.chatService.History(roomID)
	if err != nil {
		logger.WithError(err).Error("failed to load room history", "room_id", roomID)
		return
	}

	client.push(OutboundEvent{Event: EventPreviousMessages, Data: history})
}

// handleSend сохраняет сообщение и рассылает его подписчикам комнаты,
// включая отправителя. Если сохранение не удалось, рассылки нет:
// клиент сам перепошлёт по таймауту.
func (m *Manager) handleSend(payload SendMessagePayload) {
	message := &chatmodels.Message{
		RoomID:     payload.RoomID,
		SenderType: chatmodels.SenderType(payload.SenderType),
		SenderName: payload.SenderName,
		Message:    payload.Message,
	}

	if err := m.chatService.Append(message); err != nil {
		logger.WithError(err).Error("failed to store chat message", "room_id", payload.RoomID)
		return
	}

	m.broadcastToRoom(payload.RoomID, OutboundEvent{Event: EventNewMessage, Data: message})
}

// handleMarkRead гасит непрочитанные входящие комнаты и шлёт
// подписчикам сигнал обновить счётчики
func (m *Manager) handleMarkRead(roomID string) {
	if err := m.chatService.MarkRead(roomID); err != nil {
		logger.WithError(err).Error("failed to mark room read", "room_id", roomID)
		return
	}

	m.broadcastToRoom(roomID, OutboundEvent{Event: EventMessagesRead, Data: roomID})
}

func (m *Manager) broadcastToRoom(roomID string, event OutboundEvent) {
	for client := range m.rooms[roomID] {
		client.push(event)
	}
}

// removeClient снимает все подписки; хранимое состояние не меняется
func (m *Manager) removeClient(client *Client) {
	if _, ok := m.clients[client]; !ok {
		return
	}

	for roomID := range m.clientRooms[client] {
		delete(m.rooms[roomID], client)
		if len(m.rooms[roomID]) == 0 {
			delete(m.rooms, roomID)
		}
	}
	delete(m.clientRooms, client)
	delete(m.clients, client)
	close(client.send)

	// Закрываем соединение, чтобы readPump вышел и не слал события
	// от имени уже выселенного клиента
	if client.conn != nil {
		client.conn.Close()
	}

	logger.Info("ws client disconnected", "client_id", client.ID, "total", len(m.clients))
}
