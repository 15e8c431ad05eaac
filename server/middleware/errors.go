package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPError интерфейс для ошибок с HTTP статусом и сообщением
// Используется для избежания циклических зависимостей
type HTTPError interface {
	error
	StatusCode() int
	UserMessage() string
	GetContext() string
	Unwrap() error
}

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// APIPrefix префикс маршрутов, ошибки которых отдаются в JSON
const APIPrefix = "/api/"

// GinErrorMiddleware превращает ошибки, добавленные обработчиком через c.Error,
// в ответ: JSON ErrorResponse для /api/ маршрутов, текст статуса для страниц
func GinErrorMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := GetRequestIDFromGin(c)

		statusCode := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			statusCode = httpErr.StatusCode()
			message = httpErr.UserMessage()

			logger.Error("HTTP error",
				"error", httpErr.Unwrap(),
				"user_message", message,
				"context", httpErr.GetContext(),
				"status_code", statusCode,
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		} else {
			logger.Error("HTTP error",
				"error", err,
				"status_code", statusCode,
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}

		writeError(c, statusCode, message)
	}
}

// writeError записывает ошибку в формате, подходящем для маршрута
func writeError(c *gin.Context, statusCode int, message string) {
	if IsAPIRequest(c.Request) {
		c.JSON(statusCode, ErrorResponse{
			Error:     message,
			Timestamp: time.Now().Format(time.RFC3339),
			RequestID: GetRequestIDFromGin(c),
		})
		return
	}

	c.String(statusCode, message)
}

// IsAPIRequest проверяет, относится ли запрос к JSON API
func IsAPIRequest(r *http.Request) bool {
	return r != nil && strings.HasPrefix(r.URL.Path, APIPrefix)
}
