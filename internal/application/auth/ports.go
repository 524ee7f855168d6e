package auth

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// AttemptStore cuenta intentos fallidos de login por identificador dentro de una ventana.
type AttemptStore interface {
	// Incr suma un intento; la ventana empieza con el primer intento.
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
	Count(ctx context.Context, key string) (int, error)
	Reset(ctx context.Context, key string) error
}

// SessionRevoker lista de jti revocados por logout hasta que vencen.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ModuleResolver resuelve los módulos visibles del rol.
type ModuleResolver interface {
	VisibleModules(ctx context.Context, role string) ([]entity.ModuloInfo, error)
}
