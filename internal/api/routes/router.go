package routes

import (
	"github.com/gin-gonic/gin"

	"securitydashboard/server/handlers"
)

// Router управляет маршрутизацией приложения
// Централизует регистрацию всех маршрутов
type Router struct {
	engine        *gin.Engine
	pageHandler   *handlers.PageHandler
	lookupHandler *handlers.LookupHandler
	healthHandler *handlers.HealthHandler
}

// RegisterOptions задают опции регистрации маршрутов
type RegisterOptions struct {
	SkipPageRoutes bool
	SkipAPIRoutes  bool
}

// NewRouter создает новый роутер
func NewRouter(engine *gin.Engine, lookupHandler *handlers.LookupHandler) *Router {
	return &Router{
		engine:        engine,
		pageHandler:   handlers.NewPageHandler(),
		lookupHandler: lookupHandler,
		healthHandler: handlers.NewHealthHandler(),
	}
}

// RegisterAllRoutes регистрирует все маршруты
func (r *Router) RegisterAllRoutes() {
	r.RegisterAllRoutesWithOptions(RegisterOptions{})
}

// RegisterAllRoutesWithOptions регистрирует маршруты с учетом опций
func (r *Router) RegisterAllRoutesWithOptions(opts RegisterOptions) {
	if !opts.SkipPageRoutes {
		RegisterPageRoutes(r.engine, r.pageHandler)
		RegisterFormRoutes(r.engine, r.lookupHandler)
	}

	if !opts.SkipAPIRoutes {
		RegisterAPIRoutes(r.engine.Group("/api"), r.lookupHandler, r.healthHandler)
	}
}
