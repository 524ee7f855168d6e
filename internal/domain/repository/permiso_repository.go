package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// PermisoRepository define el puerto de persistencia para Permiso (DIP).
type PermisoRepository interface {
	Create(ctx context.Context, p *entity.Permiso) error
	GetByID(ctx context.Context, id string) (*entity.Permiso, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Permiso, error)
	Update(ctx context.Context, p *entity.Permiso) error
	// Delete elimina el permiso y, en cascada, sus asignaciones en modulo_permisos.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Permiso, int, error)
}
