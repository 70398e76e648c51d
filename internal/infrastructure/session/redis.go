package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain"
)

var _ sales.SessionStore = (*RedisStore)(nil)

const (
	keyPrefix  = "checkout:session:"
	lockPrefix = "checkout:lock:"
)

// lockTTL vida máxima de una reserva de finalización.
const lockTTL = 30 * time.Second

// RedisStore sesiones compartidas entre instancias de la API; Redis aplica el TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore construye el almacén sobre un cliente ya configurado.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save serializa la sesión en JSON y renueva el TTL.
func (r *RedisStore) Save(ctx context.Context, s *sales.CheckoutSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

// Get devuelve domain.ErrSessionNotFound si la clave no existe.
func (r *RedisStore) Get(ctx context.Context, id string) (*sales.CheckoutSession, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: redis get: %w", err)
	}
	var s sales.CheckoutSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: deserializar: %w", err)
	}
	return &s, nil
}

// Delete es idempotente.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

// Lock usa SET NX: sólo la primera petición obtiene la clave.
func (r *RedisStore) Lock(ctx context.Context, id string) error {
	ok, err := r.client.SetNX(ctx, lockPrefix+id, 1, lockTTL).Result()
	if err != nil {
		return fmt.Errorf("session: redis setnx: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s en finalización: %w", id, domain.ErrConflict)
	}
	return nil
}

// Unlock es idempotente.
func (r *RedisStore) Unlock(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, lockPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: redis del lock: %w", err)
	}
	return nil
}
