package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/daily-signups", h.GetDailySignups)
		dashboard.GET("/daily-revenue", h.GetDailyRevenue)
		dashboard.GET("/package-sales", h.GetPackageSales)
		dashboard.GET("/revenue-source", h.GetRevenueSource)
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetDailySignups(c *gin.Context) {
	points, err := h.dashboardService.DailySignups()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) GetDailyRevenue(c *gin.Context) {
	points, err := h.dashboardService.DailyRevenue()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) GetPackageSales(c *gin.Context) {
	points, err := h.dashboardService.PackageSales()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) GetRevenueSource(c *gin.Context) {
	points, err := h.dashboardService.RevenueSource()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
