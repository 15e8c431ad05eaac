package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL адрес Google Custom Search JSON API
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Client клиент для поиска по имени через Google Custom Search API
type Client struct {
	baseURL    string
	apiKey     string
	engineID   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// ClientConfig конфигурация клиента
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	EngineID  string
	UserAgent string
	// Timeout равный нулю означает отсутствие таймаута (поведение http.Client по умолчанию)
	Timeout time.Duration
	// RateLimit равный нулю означает отсутствие ограничения
	RateLimit  rate.Limit
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient создает новый клиент для поиска по имени
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = "PersonalSecurityDashboard"
	}
	if config.RateLimit == 0 {
		config.RateLimit = rate.Inf
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{
			Timeout: config.Timeout,
		}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Client{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		engineID:   config.EngineID,
		userAgent:  config.UserAgent,
		httpClient: config.HTTPClient,
		limiter:    rate.NewLimiter(config.RateLimit, 1),
		logger:     config.Logger,
	}
}

// Search выполняет один GET запрос к провайдеру и возвращает элементы из поля items.
// Статус ответа не проверяется: тело разбирается как JSON в любом случае,
// поэтому ответ об ошибке без items превращается в пустой список.
// Ошибки транспорта и некорректный JSON возвращаются вызывающему.
func (c *Client) Search(ctx context.Context, query string) ([]SearchItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Провайдер недоступен и "ничего не найдено" сейчас неразличимы, оставляем след в логах
		c.logger.Warn("Search provider returned non-OK status",
			"status_code", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Search completed",
		"status_code", resp.StatusCode,
		"items", len(searchResponse.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if searchResponse.Items == nil {
		return []SearchItem{}, nil
	}
	return searchResponse.Items, nil
}
