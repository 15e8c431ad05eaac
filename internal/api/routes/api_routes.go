package routes

import (
	"github.com/gin-gonic/gin"

	"securitydashboard/server/handlers"
)

// RegisterAPIRoutes регистрирует JSON API
func RegisterAPIRoutes(api *gin.RouterGroup, lookupHandler *handlers.LookupHandler, healthHandler *handlers.HealthHandler) {
	if healthHandler != nil {
		api.GET("/health", healthHandler.Health)
	}

	if lookupHandler != nil {
		api.POST("/search_name", lookupHandler.APISearchName)
		api.POST("/check_breach", lookupHandler.APICheckBreach)
	}
}
