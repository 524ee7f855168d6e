package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count     int
	expiresAt time.Time
}

// MemoryStore implementación en memoria para una sola instancia (sin REDIS_URL).
type MemoryStore struct {
	mu      sync.Mutex
	counts  map[string]*entry
	revoked map[string]time.Time
	now     func() time.Time
	swept   time.Time
}

// sweepEvery intervalo mínimo entre barridos de entradas vencidas.
const sweepEvery = time.Minute

// NewMemoryStore crea el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:  make(map[string]*entry),
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Incr suma un intento; si la ventana venció empieza una nueva.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep()
	e, ok := s.counts[key]
	if !ok || now.After(e.expiresAt) {
		e = &entry{expiresAt: now.Add(window)}
		s.counts[key] = e
	}
	e.count++
	return e.count, nil
}

// Count intentos de la ventana vigente.
func (s *MemoryStore) Count(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.counts[key]
	if !ok {
		return 0, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.counts, key)
		return 0, nil
	}
	return e.count, nil
}

// Reset borra el contador.
func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
	return nil
}

// Revoke marca el jti como revocado durante ttl.
func (s *MemoryStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = s.now().Add(ttl)
	s.sweep()
	return nil
}

// IsRevoked informa si el jti sigue revocado.
func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

// Ping siempre responde; existe para compartir el health check con RedisStore.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// sweep descarta contadores y revocaciones vencidos, como mucho una vez por sweepEvery.
// Se llama con mu tomado.
func (s *MemoryStore) sweep() {
	now := s.now()
	if now.Sub(s.swept) < sweepEvery {
		return
	}
	s.swept = now
	for key, e := range s.counts {
		if now.After(e.expiresAt) {
			delete(s.counts, key)
		}
	}
	for jti, until := range s.revoked {
		if now.After(until) {
			delete(s.revoked, jti)
		}
	}
}
