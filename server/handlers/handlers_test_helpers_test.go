package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"securitydashboard/breach"
	"securitydashboard/server/middleware"
	"securitydashboard/web"
	"securitydashboard/websearch"
)

// stubSearch подменяет клиента поиска и запоминает запросы
type stubSearch struct {
	mu      sync.Mutex
	items   []websearch.SearchItem
	err     error
	queries []string
}

func (s *stubSearch) Search(ctx context.Context, query string) ([]websearch.SearchItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.items, s.err
}

func (s *stubSearch) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// stubBreach подменяет клиента проверки утечек
type stubBreach struct {
	mu       sync.Mutex
	records  []breach.Record
	err      error
	accounts []string
}

func (s *stubBreach) BreachedAccount(ctx context.Context, email string) ([]breach.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, email)
	return s.records, s.err
}

func (s *stubBreach) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.accounts...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupLookupRouter собирает роутер с шаблонами и обработкой ошибок
func setupLookupRouter(t *testing.T, search websearch.SearchClientInterface, breachClient breach.ClientInterface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.GinErrorMiddleware(discardLogger()))

	tmpl, err := web.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)

	h := NewLookupHandler(search, breachClient, discardLogger())
	router.POST("/search_name", h.SearchName)
	router.POST("/check_breach", h.CheckBreach)
	router.POST("/api/search_name", h.APISearchName)
	router.POST("/api/check_breach", h.APICheckBreach)

	return router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
