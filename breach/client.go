package breach

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL адрес Have I Been Pwned
	DefaultBaseURL = "https://haveibeenpwned.com"
	// DefaultUserAgent HIBP отклоняет запросы без User-Agent
	DefaultUserAgent = "PersonalSecurityDashboard"

	breachedAccountPath = "/api/v3/breachedaccount/"
)

// Client клиент Have I Been Pwned API v3
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// ClientConfig конфигурация клиента
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	// Timeout равный нулю означает отсутствие таймаута
	Timeout time.Duration
	// RateLimit равный нулю означает отсутствие ограничения
	RateLimit  rate.Limit
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient создает новый клиент проверки утечек
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
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
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		userAgent:  config.UserAgent,
		httpClient: config.HTTPClient,
		limiter:    rate.NewLimiter(config.RateLimit, 1),
		logger:     config.Logger,
	}
}

// BreachedAccount выполняет один GET запрос /api/v3/breachedaccount/{email}.
// При статусе 200 возвращается разобранное тело без изменений.
// Любой другой статус (404, 401, 429 и т.д.) дает пустой список.
// Ошибки транспорта и некорректный JSON при 200 возвращаются вызывающему.
func (c *Client) BreachedAccount(ctx context.Context, email string) ([]Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	// Адрес не нормализуется, экранируется только как сегмент пути
	fullURL := c.baseURL + breachedAccountPath + url.PathEscape(email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logNonOK(resp.StatusCode, time.Since(start))
		io.Copy(io.Discard, resp.Body)
		return []Record{}, nil
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if records == nil {
		records = []Record{}
	}

	c.logger.Debug("Breach lookup completed",
		"breaches", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return records, nil
}

// logNonOK логирует статус, который сводится к пустому результату.
// 404 штатный ответ "утечек нет", остальные статусы скрывают проблему
func (c *Client) logNonOK(statusCode int, duration time.Duration) {
	switch statusCode {
	case http.StatusNotFound:
		c.logger.Debug("No breaches found",
			"status_code", statusCode,
			"duration_ms", duration.Milliseconds(),
		)
	case http.StatusUnauthorized, http.StatusForbidden:
		c.logger.Warn("Breach provider rejected credentials, returning empty result",
			"status_code", statusCode,
		)
	case http.StatusTooManyRequests:
		c.logger.Warn("Breach provider rate limit exceeded, returning empty result",
			"status_code", statusCode,
		)
	default:
		c.logger.Warn("Breach provider returned unexpected status, returning empty result",
			"status_code", statusCode,
		)
	}
}
