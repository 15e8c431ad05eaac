package routes

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStaticRoutes регистрирует маршруты для статического контента
func RegisterStaticRoutes(engine *gin.Engine, staticFS fs.FS) {
	if staticFS == nil {
		return
	}

	// Используем префикс, чтобы не перехватывать страницы и API
	engine.StaticFS("/static", http.FS(staticFS))
}
