package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
// Загружается один раз при старте и дальше не изменяется
type Config struct {
	// Сервер
	Port            string        `json:"port"`
	GinMode         string        `json:"gin_mode"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Поиск по имени (Google Custom Search)
	Search *SearchConfig `json:"search"`

	// Проверка утечек (Have I Been Pwned)
	Breach *BreachConfig `json:"breach"`
}

// SearchConfig конфигурация клиента Google Custom Search
type SearchConfig struct {
	APIKey          string        `json:"-"`
	EngineID        string        `json:"-"`
	BaseURL         string        `json:"base_url"`
	Timeout         time.Duration `json:"timeout"`
	RateLimitPerSec int           `json:"rate_limit_per_sec"`
}

// BreachConfig конфигурация клиента Have I Been Pwned
type BreachConfig struct {
	APIKey          string        `json:"-"`
	BaseURL         string        `json:"base_url"`
	UserAgent       string        `json:"user_agent"`
	Timeout         time.Duration `json:"timeout"`
	RateLimitPerSec int           `json:"rate_limit_per_sec"`
}

// LoadConfig загружает конфигурацию из переменных окружения
// Отсутствие ключей API не считается ошибкой: внешний API сам отклонит запрос
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port:            getEnv("SERVER_PORT", "5000"),
		GinMode:         os.Getenv("GIN_MODE"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		Search: LoadSearchConfig(),
		Breach: LoadBreachConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Search.APIKey == "" || config.Search.EngineID == "" {
		log.Printf("GOOGLE_API_KEY или GOOGLE_CSE_ID не заданы, поиск по имени будет отклонен провайдером")
	}
	if config.Breach.APIKey == "" {
		log.Printf("HAVEIBEENPWNED_API_KEY не задан, проверка утечек вернет пустой результат")
	}

	return config, nil
}

// LoadSearchConfig загружает конфигурацию поиска по имени
func LoadSearchConfig() *SearchConfig {
	return &SearchConfig{
		APIKey:          os.Getenv("GOOGLE_API_KEY"),
		EngineID:        os.Getenv("GOOGLE_CSE_ID"),
		BaseURL:         getEnv("GOOGLE_SEARCH_BASE_URL", "https://www.googleapis.com/customsearch/v1"),
		Timeout:         getEnvDuration("SEARCH_TIMEOUT", 0),
		RateLimitPerSec: getEnvInt("SEARCH_RATE_LIMIT_PER_SEC", 0),
	}
}

// LoadBreachConfig загружает конфигурацию проверки утечек
func LoadBreachConfig() *BreachConfig {
	return &BreachConfig{
		APIKey:          os.Getenv("HAVEIBEENPWNED_API_KEY"),
		BaseURL:         getEnv("HIBP_BASE_URL", "https://haveibeenpwned.com"),
		UserAgent:       getEnv("HIBP_USER_AGENT", "PersonalSecurityDashboard"),
		Timeout:         getEnvDuration("BREACH_TIMEOUT", 0),
		RateLimitPerSec: getEnvInt("BREACH_RATE_LIMIT_PER_SEC", 0),
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
