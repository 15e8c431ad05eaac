package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"securitydashboard/internal/api/routes"
	"securitydashboard/internal/config"
	"securitydashboard/server/handlers"
	"securitydashboard/server/middleware"
	"securitydashboard/web"
)

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout(s.config),
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("Дашборд доступен по адресу: http://localhost%s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", addr, err)
	}

	return nil
}

// writeResponseMargin запас на рендеринг ответа после запроса к внешнему API
const writeResponseMargin = 15 * time.Second

// writeTimeout выводит WriteTimeout из таймаутов внешних API.
// Если хотя бы у одного провайдера таймаут не задан, ограничения нет и у сервера
func writeTimeout(cfg *config.Config) time.Duration {
	if cfg.Search == nil || cfg.Breach == nil {
		return 0
	}
	if cfg.Search.Timeout <= 0 || cfg.Breach.Timeout <= 0 {
		return 0
	}
	return max(cfg.Search.Timeout, cfg.Breach.Timeout) + writeResponseMargin
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			log.Printf("[ensureHTTPHandler] ✗ ОШИБКА при создании HTTP handler: %v", err)
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}

	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if s.config.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(s.config.GinMode)
	}

	router := gin.New()

	// RequestID первым, чтобы остальные middleware видели идентификатор.
	// Recovery должен стоять внутри gzip: иначе gzip закроет поток со статусом 200 до записи 500
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware(s.logger))
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinRecoveryMiddleware(s.logger))
	router.Use(middleware.GinErrorMiddleware(s.logger))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	routes.RegisterStaticRoutes(router, web.Static())
	handlers.RegisterSwaggerRoutes(router)

	lookupHandler := handlers.NewLookupHandler(s.search, s.breach, s.logger)
	routes.NewRouter(router, lookupHandler).RegisterAllRoutes()

	return router, nil
}

// ServeHTTP реализует http.Handler для тестов и вспомогательных утилит
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
