package ws

import "encoding/json"

// Имена событий realtime-канала (совпадают с клиентским протоколом)
const (
	EventJoinRoom         = "join_room"
	EventPreviousMessages = "previous_messages"
	EventSendMessage      = "send_message"
	EventNewMessage       = "new_message"
	EventMarkRead         = "mark_read"
	EventMessagesRead     = "messages_read"
)

// Envelope - входящий кадр: имя события плюс сырой payload.
// join_room и mark_read несут в data строку roomId,
// send_message - объект SendMessagePayload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent - исходящий кадр, data сериализуется как есть
type OutboundEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type SendMessagePayload struct {
	RoomID     string `json:"roomId"`
	SenderType string `json:"senderType"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
}
