package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.AprovisionamientoRepository = (*AprovisionamientoRepo)(nil)

const aprovColumns = `id, cedula_cliente, tipo_radio, mac_serial_radio, tipo_router_onu, mac_serial_router,
	ip_navegacion, ip_gestion, metros_cable, tipo_cable, notas, estado_aprovisionamiento, created_at, updated_at`

// AprovisionamientoRepo equipos y direccionamiento por cliente.
type AprovisionamientoRepo struct {
	q Querier
}

// NewAprovisionamientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAprovisionamientoRepository(q Querier) *AprovisionamientoRepo {
	return &AprovisionamientoRepo{q: q}
}

// Create persiste un aprovisionamiento. metros_cable es NUMERIC(10,2) vía pgx-shopspring-decimal.
func (r *AprovisionamientoRepo) Create(ctx context.Context, a *entity.Aprovisionamiento) error {
	_, err := r.q.Exec(ctx, `INSERT INTO aprovisionamiento (`+aprovColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.CedulaCliente, a.TipoRadio, a.MacSerialRadio, a.TipoRouterONU, a.MacSerialRouter,
		a.IPNavegacion, a.IPGestion, a.MetrosCable, a.TipoCable, a.Notas, a.EstadoAprovisionamiento, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert aprovisionamiento: %w", err)
	}
	return nil
}

// GetByID obtiene un aprovisionamiento; nil si no existe.
func (r *AprovisionamientoRepo) GetByID(ctx context.Context, id string) (*entity.Aprovisionamiento, error) {
	return r.getOne(ctx, `WHERE id::text = $1`, id)
}

// GetLatestByCedula último aprovisionamiento del cliente.
func (r *AprovisionamientoRepo) GetLatestByCedula(ctx context.Context, cedula string) (*entity.Aprovisionamiento, error) {
	return r.getOne(ctx, `WHERE cedula_cliente = $1 ORDER BY created_at DESC LIMIT 1`, cedula)
}

func (r *AprovisionamientoRepo) getOne(ctx context.Context, tail string, arg any) (*entity.Aprovisionamiento, error) {
	a, err := scanAprov(r.q.QueryRow(ctx, `SELECT `+aprovColumns+` FROM aprovisionamiento `+tail, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aprovisionamiento: %w", err)
	}
	return a, nil
}

// Update actualiza equipos, direccionamiento y estado.
func (r *AprovisionamientoRepo) Update(ctx context.Context, a *entity.Aprovisionamiento) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE aprovisionamiento SET tipo_radio = $2, mac_serial_radio = $3, tipo_router_onu = $4,
			mac_serial_router = $5, ip_navegacion = $6, ip_gestion = $7, metros_cable = $8, tipo_cable = $9,
			notas = $10, estado_aprovisionamiento = $11, updated_at = $12
		WHERE id = $1`,
		a.ID, a.TipoRadio, a.MacSerialRadio, a.TipoRouterONU, a.MacSerialRouter, a.IPNavegacion, a.IPGestion,
		a.MetrosCable, a.TipoCable, a.Notas, a.EstadoAprovisionamiento, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update aprovisionamiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un aprovisionamiento.
func (r *AprovisionamientoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM aprovisionamiento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aprovisionamiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista aprovisionamientos, más recientes primero.
func (r *AprovisionamientoRepo) List(ctx context.Context, f repository.AprovisionamientoFilter) ([]*entity.Aprovisionamiento, int, error) {
	var w where
	if f.Search != "" {
		w.add(`(cedula_cliente ILIKE ? OR mac_serial_router ILIKE ? OR mac_serial_radio ILIKE ?
			OR ip_navegacion ILIKE ? OR ip_gestion ILIKE ?)`, likePattern(f.Search))
	}
	if f.Estado != "" {
		w.add("estado_aprovisionamiento = ?", f.Estado)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM aprovisionamiento`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count aprovisionamiento: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+aprovColumns+` FROM aprovisionamiento`+w.sql()+
		` ORDER BY created_at DESC LIMIT `+w.next(f.Limit)+` OFFSET `+w.next(f.Offset), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list aprovisionamiento: %w", err)
	}
	defer rows.Close()
	var out []*entity.Aprovisionamiento
	for rows.Next() {
		a, err := scanAprov(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan aprovisionamiento: %w", err)
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func scanAprov(row pgx.Row) (*entity.Aprovisionamiento, error) {
	var a entity.Aprovisionamiento
	if err := row.Scan(&a.ID, &a.CedulaCliente, &a.TipoRadio, &a.MacSerialRadio, &a.TipoRouterONU, &a.MacSerialRouter,
		&a.IPNavegacion, &a.IPGestion, &a.MetrosCable, &a.TipoCable, &a.Notas, &a.EstadoAprovisionamiento,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
