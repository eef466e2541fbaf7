package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
	"smartadmin_backend/internal/services/dto"
)

type MemberHandler struct {
	*BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(base *BaseHandler, memberService services.MemberService) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   base,
		memberService: memberService,
	}
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.List)
		members.GET("/:id", h.Get)
		members.PUT("/:id", h.Update)
		members.POST("/send-message", h.SendMessage)
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	var query dto.ListMembersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.memberService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func (h *MemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func (h *MemberHandler) SendMessage(c *gin.Context) {
	var req dto.SendMemberMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.memberService.SendMessage(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
