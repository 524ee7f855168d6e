package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// AuditoriaFilter filtros de la bitácora.
type AuditoriaFilter struct {
	Entidad   string
	UsuarioID string
	Limit     int
	Offset    int
}

// AuditoriaRepository bitácora de cambios (solo inserción y consulta).
type AuditoriaRepository interface {
	Create(ctx context.Context, a *entity.Auditoria) error
	List(ctx context.Context, f AuditoriaFilter) ([]*entity.Auditoria, int, error)
}
