package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo bitácora append-only.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

func (r *AuditoriaRepo) Create(ctx context.Context, a *entity.Auditoria) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO auditoria (id, usuario_id, usuario_nombre, accion, entidad, entidad_id, detalle, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.UsuarioID, a.UsuarioNombre, a.Accion, a.Entidad, a.EntidadID, a.Detalle, a.IP, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

func (r *AuditoriaRepo) List(ctx context.Context, f repository.AuditoriaFilter) ([]*entity.Auditoria, int, error) {
	var w where
	if f.Entidad != "" {
		w.add("entidad = ?", f.Entidad)
	}
	if f.UsuarioID != "" {
		w.add("usuario_id = ?", f.UsuarioID)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM auditoria`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count auditoria: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, usuario_id, usuario_nombre, accion, entidad, entidad_id, detalle, ip, created_at
		FROM auditoria`+w.sql()+` ORDER BY created_at DESC LIMIT `+w.next(f.Limit)+` OFFSET `+w.next(f.Offset), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var out []*entity.Auditoria
	for rows.Next() {
		var a entity.Auditoria
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.UsuarioNombre, &a.Accion, &a.Entidad, &a.EntidadID,
			&a.Detalle, &a.IP, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan auditoria: %w", err)
		}
		out = append(out, &a)
	}
	return out, total, rows.Err()
}
