package websearch

// SearchItem элемент результата поиска в том виде, в котором его вернул провайдер.
// Обычно это объект с title, link и snippet, но тип не проверяется:
// любой JSON-элемент передается дальше без изменений.
type SearchItem = any

// SearchResponse ответ Google Custom Search API
// Нас интересует только поле items, остальное игнорируется
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}
