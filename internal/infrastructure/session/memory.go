// Package session guarda las sesiones de checkout: en memoria (un solo proceso) o en Redis.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain"
)

var _ sales.SessionStore = (*MemoryStore)(nil)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore sesiones serializadas en un mapa con TTL. Guardar bytes evita compartir
// slices del carrito entre lectores.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
	locks   map[string]time.Time
}

// NewMemoryStore construye el almacén. ttl <= 0 = sin expiración.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry), locks: make(map[string]time.Time)}
}

// Save reemplaza la sesión y renueva su TTL (última escritura gana).
func (m *MemoryStore) Save(_ context.Context, s *sales.CheckoutSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{data: data}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.entries[s.ID] = e
	m.sweepLocked()
	return nil
}

// Get devuelve domain.ErrSessionNotFound si no existe o expiró.
func (m *MemoryStore) Get(_ context.Context, id string) (*sales.CheckoutSession, error) {
	m.mu.Lock()
	e, ok := m.entries[id]
	if ok && m.expired(e) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	var s sales.CheckoutSession
	if err := json.Unmarshal(e.data, &s); err != nil {
		return nil, fmt.Errorf("session: deserializar: %w", err)
	}
	return &s, nil
}

// Delete es idempotente.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Lock toma la reserva de finalización bajo mu; una reserva vencida se puede retomar.
func (m *MemoryStore) Lock(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if until, ok := m.locks[id]; ok && now.Before(until) {
		return fmt.Errorf("session %s en finalización: %w", id, domain.ErrConflict)
	}
	m.locks[id] = now.Add(lockTTL)
	return nil
}

// Unlock es idempotente.
func (m *MemoryStore) Unlock(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && m.now().After(e.expiresAt)
}

// sweepLocked elimina sesiones expiradas; se llama con mu tomado.
func (m *MemoryStore) sweepLocked() {
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
		}
	}
}
