package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	{
		chat.GET("/rooms", h.ListRooms)
	}
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	resp, err := h.chatService.ListRooms()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
