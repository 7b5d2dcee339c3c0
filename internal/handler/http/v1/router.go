package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты: регистрация, вход, health-check
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
	api.GET("/system/health", h.healthCheck)

	// Маршруты для аутентифицированных пользователей
	member := api.Group("", AuthRequiredMiddleware(h.authService, h.logger))
	{
		member.POST("/incidents", h.createIncident)
		member.GET("/incidents", h.listIncidents)
		member.GET("/incidents/:id", h.getIncident)

		member.GET("/incident-types", h.listIncidentTypes)

		member.POST("/push-tokens", h.registerPushToken)
		member.DELETE("/push-tokens/:token", h.unregisterPushToken)

		member.GET("/users/me", h.getProfile)
		member.PUT("/users/me", h.updateProfile)
		member.POST("/users/me/photo", h.uploadProfilePhoto)
		member.POST("/users/me/heartbeat", h.heartbeat)
	}

	// Маршруты только для администраторов: роль перечитывается из бд
	admin := api.Group("", AuthRequiredMiddleware(h.authService, h.logger), AdminRequiredMiddleware(h.authService, h.logger))
	{
		admin.POST("/incidents/:id/resolve", h.resolveIncident)
		admin.DELETE("/incidents/:id", h.deleteIncident)
		admin.GET("/incidents/stats", h.getStats)

		admin.POST("/incident-types", h.createIncidentType)
		admin.DELETE("/incident-types/:id", h.deleteIncidentType)
	}
}
