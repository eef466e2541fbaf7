package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/auth"
	"smartadmin_backend/internal/handlers"
	"smartadmin_backend/internal/middleware"
	"smartadmin_backend/internal/services"
	"smartadmin_backend/ws"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
	jwtManager *auth.JWTManager,
	authService services.AuthService,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := ginRouter.Group("/api")

	// Публичные маршруты: вход и создание первого администратора
	appHandlers.AuthHandler.RegisterPublicRoutes(api)

	// Всё остальное за проверкой токена
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager, authService))
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.DashboardHandler.RegisterRoutes(protected)
		appHandlers.MemberHandler.RegisterRoutes(protected)
		appHandlers.RevenueHandler.RegisterRoutes(protected)
		appHandlers.ReviewHandler.RegisterRoutes(protected)
		appHandlers.CostHandler.RegisterRoutes(protected)
		appHandlers.PricingHandler.RegisterRoutes(protected)
		appHandlers.ChatHandler.RegisterRoutes(protected)
	}

	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware(jwtManager, authService))
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
