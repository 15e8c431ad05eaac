package websearch

import (
	"log/slog"

	"golang.org/x/time/rate"

	"securitydashboard/internal/config"
)

// NewClientFromConfig создает клиента из конфигурации приложения
func NewClientFromConfig(cfg *config.SearchConfig, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.LoadSearchConfig()
	}

	limit := rate.Inf
	if cfg.RateLimitPerSec > 0 {
		limit = rate.Limit(cfg.RateLimitPerSec)
	}

	return NewClient(ClientConfig{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		EngineID:  cfg.EngineID,
		Timeout:   cfg.Timeout,
		RateLimit: limit,
		Logger:    logger,
	})
}
