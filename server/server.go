package server

import (
	"log/slog"
	"net/http"
	"sync"

	"securitydashboard/breach"
	"securitydashboard/internal/config"
	"securitydashboard/websearch"
)

// Server HTTP сервер дашборда
// Не хранит состояния между запросами: все зависимости неизменяемы после создания
type Server struct {
	config *config.Config
	search websearch.SearchClientInterface
	breach breach.ClientInterface
	logger *slog.Logger

	httpServer  *http.Server
	httpHandler http.Handler

	handlerOnce    sync.Once
	handlerInitErr error
}

// NewServer создает новый сервер
func NewServer(cfg *config.Config, search websearch.SearchClientInterface, breachClient breach.ClientInterface, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		config: cfg,
		search: search,
		breach: breachClient,
		logger: logger,
	}
}

// NewServerWithConfig создает сервер и клиентов внешних API из конфигурации
func NewServerWithConfig(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	searchClient := websearch.NewClientFromConfig(cfg.Search, logger)
	breachClient := breach.NewClientFromConfig(cfg.Breach, logger)

	return NewServer(cfg, searchClient, breachClient, logger)
}
