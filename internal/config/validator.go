package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Validate проверяет корректность конфигурации
// Ключи API намеренно не проверяются
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.ShutdownTimeout < 0 {
		errors = append(errors, "shutdown timeout must not be negative")
	}

	// Валидация уровня логирования
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	// Валидация режима Gin
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode: %s (valid: debug, release, test)", c.GinMode))
	}

	if c.Search == nil {
		errors = append(errors, "search config is required")
	} else {
		errors = append(errors, validateUpstream("search", c.Search.BaseURL, int64(c.Search.Timeout), c.Search.RateLimitPerSec)...)
	}

	if c.Breach == nil {
		errors = append(errors, "breach config is required")
	} else {
		errors = append(errors, validateUpstream("breach", c.Breach.BaseURL, int64(c.Breach.Timeout), c.Breach.RateLimitPerSec)...)
		if c.Breach.UserAgent == "" {
			errors = append(errors, "breach user agent is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateUpstream проверяет общие параметры внешнего API
func validateUpstream(name, baseURL string, timeout int64, rateLimit int) []string {
	var errors []string

	if baseURL == "" {
		errors = append(errors, fmt.Sprintf("%s base url is required", name))
	} else if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid %s base url: %s", name, baseURL))
	}

	if timeout < 0 {
		errors = append(errors, fmt.Sprintf("%s timeout must not be negative", name))
	}
	if rateLimit < 0 {
		errors = append(errors, fmt.Sprintf("%s rate limit must not be negative", name))
	}

	return errors
}
