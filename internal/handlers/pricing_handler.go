package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
	"smartadmin_backend/internal/services/dto"
)

type PricingHandler struct {
	*BaseHandler
	packageService services.PackageService
}

func NewPricingHandler(base *BaseHandler, packageService services.PackageService) *PricingHandler {
	return &PricingHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

func (h *PricingHandler) RegisterRoutes(r *gin.RouterGroup) {
	pricing := r.Group("/pricing")
	{
		pricing.GET("", h.List)
		pricing.PUT("/:id", h.Update)
	}
}

func (h *PricingHandler) List(c *gin.Context) {
	resp, err := h.packageService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PricingHandler) Update(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}
