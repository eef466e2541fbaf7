package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartadmin_backend/internal/auth"
	"smartadmin_backend/internal/logger"
	"smartadmin_backend/internal/services"
)

const claimsContextKey = "adminClaims"

// AuthMiddleware проверяет Bearer-токен: подпись, срок действия
// и отсутствие в чёрном списке (отозванные через logout).
func AuthMiddleware(jwtManager *auth.JWTManager, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		blacklisted, err := authService.IsBlacklisted(c.Request.Context(), token)
		if err != nil {
			// Redis недоступен: пропускаем проверку отзыва, подпись всё равно проверяется
			logger.CtxWithError(c.Request.Context(), "blacklist check failed", err)
		} else if blacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// GetAdminClaims достаёт claims текущего администратора из контекста
func GetAdminClaims(c *gin.Context) (*auth.Claims, bool) {
	val, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
