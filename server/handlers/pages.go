package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page статическая страница дашборда
type Page struct {
	Path     string
	Template string
	Title    string
}

// StaticPages страницы без входных данных и без обращений к внешним API
var StaticPages = []Page{
	{Path: "/", Template: "dashboard.html", Title: "Dashboard"},
	{Path: "/make_yourself_aware", Template: "make_yourself_aware.html", Title: "Make yourself aware"},
	{Path: "/monitor", Template: "monitor.html", Title: "Monitor"},
	{Path: "/save_encrypt", Template: "save_encrypt.html", Title: "Save & encrypt"},
	{Path: "/act", Template: "act.html", Title: "Act"},
	{Path: "/coders", Template: "coders.html", Title: "Coders"},
}

// PageHandler обработчик статических страниц
type PageHandler struct{}

// NewPageHandler создает новый обработчик статических страниц
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Render возвращает обработчик, который отдает шаблон страницы
func (h *PageHandler) Render(page Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, page.Template, gin.H{
			"Title": page.Title,
		})
	}
}
