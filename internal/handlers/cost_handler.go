package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
	"smartadmin_backend/internal/services/dto"
)

type CostHandler struct {
	*BaseHandler
	costService services.CostService
}

func NewCostHandler(base *BaseHandler, costService services.CostService) *CostHandler {
	return &CostHandler{
		BaseHandler: base,
		costService: costService,
	}
}

func (h *CostHandler) RegisterRoutes(r *gin.RouterGroup) {
	costs := r.Group("/costs")
	{
		costs.GET("", h.List)
		costs.POST("", h.Create)
	}
}

func (h *CostHandler) List(c *gin.Context) {
	var query dto.ListCostsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.costService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CostHandler) Create(c *gin.Context) {
	var req dto.CreateCostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cost, err := h.costService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cost": cost})
}
