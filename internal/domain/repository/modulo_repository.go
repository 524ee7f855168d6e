package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// ModuloRepository catálogo de módulos y tabla puente modulo_permisos.
// Cada llamada consulta la base de datos; no hay caché.
type ModuloRepository interface {
	List(ctx context.Context) ([]*entity.Modulo, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	// PermisosByRole resuelve rol → modulo_permisos → permisos.
	PermisosByRole(ctx context.Context, role string) ([]*entity.Permiso, error)
	AssignPermiso(ctx context.Context, role, permisoID string) error
	RevokePermiso(ctx context.Context, role, permisoID string) error
	RevokeAll(ctx context.Context, role string) error
}
