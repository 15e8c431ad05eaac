package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"securitydashboard/breach"
	apperrors "securitydashboard/server/errors"
	"securitydashboard/server/middleware"
	"securitydashboard/websearch"
)

// SearchNameResponse результат поиска по имени
type SearchNameResponse struct {
	Query   string                 `json:"query"`
	Results []websearch.SearchItem `json:"results"`
}

// CheckBreachResponse результат проверки адреса по базе утечек
type CheckBreachResponse struct {
	Email    string          `json:"email"`
	Breaches []breach.Record `json:"breaches"`
}

// LookupHandler обработчик форм поиска по имени и проверки утечек.
// Каждый запрос выполняет ровно один запрос к внешнему API
type LookupHandler struct {
	search websearch.SearchClientInterface
	breach breach.ClientInterface
	logger *slog.Logger
}

// NewLookupHandler создает новый обработчик
func NewLookupHandler(search websearch.SearchClientInterface, breachClient breach.ClientInterface, logger *slog.Logger) *LookupHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupHandler{
		search: search,
		breach: breachClient,
		logger: logger,
	}
}

// SearchName обрабатывает POST /search_name
func (h *LookupHandler) SearchName(c *gin.Context) {
	resp, ok := h.searchName(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "search_results.html", gin.H{
		"Title":   "Search results",
		"Query":   resp.Query,
		"Results": resp.Results,
	})
}

// CheckBreach обрабатывает POST /check_breach
func (h *LookupHandler) CheckBreach(c *gin.Context) {
	resp, ok := h.checkBreach(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "breach_results.html", gin.H{
		"Title":    "Breach check",
		"Email":    resp.Email,
		"Breaches": resp.Breaches,
	})
}

// @Summary Search the web for a name
// @Description Forwards the name to Google Custom Search and returns the items array as is
// @Tags lookups
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name to search for"
// @Success 200 {object} SearchNameResponse "Search results, empty if the provider returned no items"
// @Failure 400 {object} middleware.ErrorResponse "Missing name field"
// @Failure 502 {object} middleware.ErrorResponse "Search provider unreachable or returned malformed JSON"
// @Router /search_name [post]
// APISearchName обрабатывает POST /api/search_name
func (h *LookupHandler) APISearchName(c *gin.Context) {
	resp, ok := h.searchName(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Check an email address against known breaches
// @Description Queries Have I Been Pwned. Any non-200 status from the provider yields an empty list
// @Tags lookups
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email address, used verbatim"
// @Success 200 {object} CheckBreachResponse "Breaches, empty if none were found or the provider refused"
// @Failure 400 {object} middleware.ErrorResponse "Missing email field"
// @Failure 502 {object} middleware.ErrorResponse "Breach provider unreachable or returned malformed JSON"
// @Router /check_breach [post]
// APICheckBreach обрабатывает POST /api/check_breach
func (h *LookupHandler) APICheckBreach(c *gin.Context) {
	resp, ok := h.checkBreach(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// searchName извлекает поле name и выполняет поиск
func (h *LookupHandler) searchName(c *gin.Context) (*SearchNameResponse, bool) {
	name, ok := RequirePostForm(c, "name")
	if !ok {
		return nil, false
	}

	start := time.Now()
	results, err := h.search.Search(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, apperrors.NewBadGatewayError("name search failed", err).WithContext(c.FullPath()))
		return nil, false
	}

	h.logger.Info("Name search completed",
		"results", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", middleware.GetRequestIDFromGin(c),
	)

	return &SearchNameResponse{Query: name, Results: results}, true
}

// checkBreach извлекает поле email и проверяет адрес
func (h *LookupHandler) checkBreach(c *gin.Context) (*CheckBreachResponse, bool) {
	email, ok := RequirePostForm(c, "email")
	if !ok {
		return nil, false
	}

	start := time.Now()
	breaches, err := h.breach.BreachedAccount(c.Request.Context(), email)
	if err != nil {
		abortWithError(c, apperrors.NewBadGatewayError("breach lookup failed", err).WithContext(c.FullPath()))
		return nil, false
	}

	h.logger.Info("Breach check completed",
		"breaches", len(breaches),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", middleware.GetRequestIDFromGin(c),
	)

	return &CheckBreachResponse{Email: email, Breaches: breaches}, true
}
