package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
	"smartadmin_backend/internal/services/dto"
)

type RevenueHandler struct {
	*BaseHandler
	revenueService services.RevenueService
}

func NewRevenueHandler(base *BaseHandler, revenueService services.RevenueService) *RevenueHandler {
	return &RevenueHandler{
		BaseHandler:    base,
		revenueService: revenueService,
	}
}

func (h *RevenueHandler) RegisterRoutes(r *gin.RouterGroup) {
	revenue := r.Group("/revenue")
	{
		revenue.GET("", h.List)
		revenue.POST("/kmong-upload", h.KmongUpload)
	}
}

func (h *RevenueHandler) List(c *gin.Context) {
	var query dto.ListRevenueQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.revenueService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RevenueHandler) KmongUpload(c *gin.Context) {
	var req dto.KmongUploadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.revenueService.KmongUpload(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
