package routes

import (
	"github.com/gin-gonic/gin"

	"securitydashboard/server/handlers"
)

// RegisterPageRoutes регистрирует статические страницы дашборда
func RegisterPageRoutes(engine *gin.Engine, pageHandler *handlers.PageHandler) {
	if pageHandler == nil {
		return
	}

	for _, page := range handlers.StaticPages {
		engine.GET(page.Path, pageHandler.Render(page))
	}
}

// RegisterFormRoutes регистрирует обработчики HTML-форм
func RegisterFormRoutes(engine *gin.Engine, lookupHandler *handlers.LookupHandler) {
	if lookupHandler == nil {
		return
	}

	engine.POST("/search_name", lookupHandler.SearchName)
	engine.POST("/check_breach", lookupHandler.CheckBreach)
}
