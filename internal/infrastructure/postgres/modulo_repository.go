package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.ModuloRepository = (*ModuloRepo)(nil)

// ModuloRepo tabla modulo y tabla puente modulo_permisos.
type ModuloRepo struct {
	q Querier
}

// NewModuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewModuloRepository(q Querier) *ModuloRepo {
	return &ModuloRepo{q: q}
}

// List devuelve los módulos (roles asignables) por nombre.
func (r *ModuloRepo) List(ctx context.Context) ([]*entity.Modulo, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, descripcion FROM modulo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list modulo: %w", err)
	}
	defer rows.Close()
	var out []*entity.Modulo
	for rows.Next() {
		var m entity.Modulo
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Descripcion); err != nil {
			return nil, fmt.Errorf("scan modulo: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ExistsByNombre informa si existe un módulo con ese nombre exacto.
func (r *ModuloRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM modulo WHERE nombre = $1)`, nombre).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists modulo: %w", err)
	}
	return ok, nil
}

// PermisosByRole resuelve rol → modulo_permisos → permisos.
func (r *ModuloRepo) PermisosByRole(ctx context.Context, role string) ([]*entity.Permiso, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.nombre, p.descripcion, p.fecha_creacion, p.fecha_modificacion
		FROM modulo_permisos mp
		JOIN permisos p ON p.id = mp.permiso_id
		WHERE mp.modulo = $1
		ORDER BY p.nombre`, role)
	if err != nil {
		return nil, fmt.Errorf("permisos del rol: %w", err)
	}
	defer rows.Close()
	var out []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.FechaCreacion, &p.FechaModificacion); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// AssignPermiso inserta la asignación; si ya existe no hace nada.
func (r *ModuloRepo) AssignPermiso(ctx context.Context, role, permisoID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO modulo_permisos (modulo, permiso_id) VALUES ($1, $2)
		ON CONFLICT (modulo, permiso_id) DO NOTHING`, role, permisoID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("assign permiso: %w", err)
	}
	return nil
}

// RevokePermiso borra la asignación.
func (r *ModuloRepo) RevokePermiso(ctx context.Context, role, permisoID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM modulo_permisos WHERE modulo = $1 AND permiso_id = $2`, role, permisoID); err != nil {
		return fmt.Errorf("revoke permiso: %w", err)
	}
	return nil
}

// RevokeAll borra todas las asignaciones del rol.
func (r *ModuloRepo) RevokeAll(ctx context.Context, role string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM modulo_permisos WHERE modulo = $1`, role); err != nil {
		return fmt.Errorf("revoke all: %w", err)
	}
	return nil
}
