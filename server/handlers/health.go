package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse ответ проверки живости
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// HealthHandler обработчик проверки живости
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler создает новый обработчик проверки живости
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// @Summary Liveness check
// @Description Does not touch external providers
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
// Health обрабатывает GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	})
}
