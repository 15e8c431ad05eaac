package websearch

import (
	"context"
)

// SearchClientInterface интерфейс для клиентов поиска по имени
// Позволяет подменять клиента в обработчиках и тестах
type SearchClientInterface interface {
	// Search выполняет поиск по запросу
	Search(ctx context.Context, query string) ([]SearchItem, error)
}

// Проверка, что Client реализует интерфейс
var _ SearchClientInterface = (*Client)(nil)
