// Package cache guarda as leituras do store por pouco tempo.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	KeyEmployees = "empleados"
	KeyAgenda    = "agenda"
)

// Cache guarda valores já serializados. Falhas de leitura contam como miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Load devolve o valor em cache ou chama loader e guarda o resultado.
// Erros do loader não são guardados.
func Load[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func(context.Context) (T, error)) (T, error) {
	if b, ok, err := c.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
	}

	v, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if ttl > 0 {
		if b, err := json.Marshal(v); err == nil {
			_ = c.Set(ctx, key, b, ttl)
		}
	}
	return v, nil
}
