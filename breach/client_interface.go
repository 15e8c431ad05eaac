package breach

import (
	"context"
)

// ClientInterface интерфейс для проверки адреса по базе утечек
type ClientInterface interface {
	// BreachedAccount возвращает утечки, в которых встречается адрес
	BreachedAccount(ctx context.Context, email string) ([]Record, error)
}

var _ ClientInterface = (*Client)(nil)
