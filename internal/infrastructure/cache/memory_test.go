package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore() (*MemoryStore, *clock) {
	c := &clock{t: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)}
	s := NewMemoryStore()
	s.now = c.now
	return s, c
}

func TestMemoryStore_VentanaDeIntentos(t *testing.T) {
	s, c := newTestStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		n, err := s.Incr(ctx, "login:ana", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, _ := s.Count(ctx, "login:ana")
	assert.Equal(t, 3, n)

	c.t = c.t.Add(16 * time.Minute)
	n, _ = s.Count(ctx, "login:ana")
	assert.Zero(t, n, "la ventana venció")

	n, _ = s.Incr(ctx, "login:ana", 15*time.Minute)
	assert.Equal(t, 1, n)
	require.NoError(t, s.Reset(ctx, "login:ana"))
	n, _ = s.Count(ctx, "login:ana")
	assert.Zero(t, n)
}

func TestMemoryStore_Revocacion(t *testing.T) {
	s, c := newTestStore()
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", 30*time.Minute))
	revoked, _ = s.IsRevoked(ctx, "jti-1")
	assert.True(t, revoked)

	c.t = c.t.Add(31 * time.Minute)
	revoked, _ = s.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

func TestMemoryStore_IncrBarreVentanasVencidas(t *testing.T) {
	s, c := newTestStore()
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		_, err := s.Incr(ctx, fmt.Sprintf("login:user-%d", i), 15*time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, s.counts, 500)

	c.t = c.t.Add(time.Hour)
	n, err := s.Incr(ctx, "login:otro", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, s.counts, 1, "solo queda la ventana vigente")
}

func TestMemoryStore_RevokeBarreRevocacionesVencidas(t *testing.T) {
	s, c := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-viejo", time.Minute))
	c.t = c.t.Add(10 * time.Minute)
	require.NoError(t, s.Revoke(ctx, "jti-nuevo", 30*time.Minute))

	assert.Len(t, s.revoked, 1)
	_, ok := s.revoked["jti-nuevo"]
	assert.True(t, ok)
}
