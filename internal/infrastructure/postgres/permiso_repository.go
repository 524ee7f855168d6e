package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

const permisoColumns = `id, nombre, descripcion, fecha_creacion, fecha_modificacion`

// PermisoRepo catálogo de permisos.
type PermisoRepo struct {
	q Querier
}

// NewPermisoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermisoRepository(q Querier) *PermisoRepo {
	return &PermisoRepo{q: q}
}

// Create persiste un permiso.
func (r *PermisoRepo) Create(ctx context.Context, p *entity.Permiso) error {
	_, err := r.q.Exec(ctx, `INSERT INTO permisos (`+permisoColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Nombre, p.Descripcion, p.FechaCreacion, p.FechaModificacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permiso: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso; nil si no existe.
func (r *PermisoRepo) GetByID(ctx context.Context, id string) (*entity.Permiso, error) {
	return r.getOne(ctx, "id::text = $1", id)
}

// GetByNombre busca sin distinguir mayúsculas.
func (r *PermisoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Permiso, error) {
	return r.getOne(ctx, "LOWER(nombre) = LOWER($1)", nombre)
}

func (r *PermisoRepo) getOne(ctx context.Context, cond string, arg any) (*entity.Permiso, error) {
	var p entity.Permiso
	err := r.q.QueryRow(ctx, `SELECT `+permisoColumns+` FROM permisos WHERE `+cond, arg).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.FechaCreacion, &p.FechaModificacion)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permiso: %w", err)
	}
	return &p, nil
}

// Update actualiza nombre, descripción y fecha_modificacion.
func (r *PermisoRepo) Update(ctx context.Context, p *entity.Permiso) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE permisos SET nombre = $2, descripcion = $3, fecha_modificacion = $4
		WHERE id = $1`, p.ID, p.Nombre, p.Descripcion, p.FechaModificacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update permiso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el permiso; ON DELETE CASCADE borra sus filas de modulo_permisos.
func (r *PermisoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM permisos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete permiso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista permisos por nombre.
func (r *PermisoRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Permiso, int, error) {
	var w where
	if f.Search != "" {
		w.add("(nombre ILIKE ? OR descripcion ILIKE ?)", likePattern(f.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM permisos`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count permisos: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+permisoColumns+` FROM permisos`+w.sql()+
		` ORDER BY nombre LIMIT `+w.next(f.Limit)+` OFFSET `+w.next(f.Offset), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.FechaCreacion, &p.FechaModificacion); err != nil {
			return nil, 0, fmt.Errorf("scan permiso: %w", err)
		}
		out = append(out, &p)
	}
	return out, total, rows.Err()
}
