package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.AgendamientoRepository = (*AgendamientoRepo)(nil)

const agendamientoColumns = `id, cedula_cliente, fecha_visita, franja_visita, tecnico_asignado, estado_visita, notas, created_at, updated_at`

// AgendamientoRepo visitas de instalación.
type AgendamientoRepo struct {
	q Querier
}

// NewAgendamientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgendamientoRepository(q Querier) *AgendamientoRepo {
	return &AgendamientoRepo{q: q}
}

// Create persiste una visita.
func (r *AgendamientoRepo) Create(ctx context.Context, a *entity.Agendamiento) error {
	_, err := r.q.Exec(ctx, `INSERT INTO agendamiento (`+agendamientoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.CedulaCliente, a.FechaVisita, a.FranjaVisita, a.TecnicoAsignado, a.EstadoVisita, a.Notas, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert agendamiento: %w", err)
	}
	return nil
}

// GetByID obtiene una visita; nil si no existe.
func (r *AgendamientoRepo) GetByID(ctx context.Context, id string) (*entity.Agendamiento, error) {
	return r.getOne(ctx, `WHERE id::text = $1`, id)
}

// GetLatestByCedula última visita registrada del cliente.
func (r *AgendamientoRepo) GetLatestByCedula(ctx context.Context, cedula string) (*entity.Agendamiento, error) {
	return r.getOne(ctx, `WHERE cedula_cliente = $1 ORDER BY created_at DESC LIMIT 1`, cedula)
}

func (r *AgendamientoRepo) getOne(ctx context.Context, tail string, arg any) (*entity.Agendamiento, error) {
	a, err := scanAgendamiento(r.q.QueryRow(ctx, `SELECT `+agendamientoColumns+` FROM agendamiento `+tail, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agendamiento: %w", err)
	}
	return a, nil
}

// Update actualiza fecha, franja, técnico, estado y notas.
func (r *AgendamientoRepo) Update(ctx context.Context, a *entity.Agendamiento) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE agendamiento SET fecha_visita = $2, franja_visita = $3, tecnico_asignado = $4,
			estado_visita = $5, notas = $6, updated_at = $7
		WHERE id = $1`,
		a.ID, a.FechaVisita, a.FranjaVisita, a.TecnicoAsignado, a.EstadoVisita, a.Notas, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update agendamiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una visita.
func (r *AgendamientoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM agendamiento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agendamiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista visitas por fecha de visita ascendente (agenda).
func (r *AgendamientoRepo) List(ctx context.Context, f repository.AgendamientoFilter) ([]*entity.Agendamiento, int, error) {
	var w where
	if f.Search != "" {
		w.add("cedula_cliente ILIKE ?", likePattern(f.Search))
	}
	if f.Estado != "" {
		w.add("estado_visita = ?", f.Estado)
	}
	if f.Tecnico != "" {
		w.add("tecnico_asignado ILIKE ?", likePattern(f.Tecnico))
	}
	if f.Desde != nil {
		w.add("fecha_visita >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		w.add("fecha_visita <= ?", *f.Hasta)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM agendamiento`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agendamiento: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+agendamientoColumns+` FROM agendamiento`+w.sql()+
		` ORDER BY fecha_visita, franja_visita, created_at LIMIT `+w.next(f.Limit)+` OFFSET `+w.next(f.Offset), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list agendamiento: %w", err)
	}
	defer rows.Close()
	var out []*entity.Agendamiento
	for rows.Next() {
		a, err := scanAgendamiento(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan agendamiento: %w", err)
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func scanAgendamiento(row pgx.Row) (*entity.Agendamiento, error) {
	var a entity.Agendamiento
	if err := row.Scan(&a.ID, &a.CedulaCliente, &a.FechaVisita, &a.FranjaVisita, &a.TecnicoAsignado,
		&a.EstadoVisita, &a.Notas, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
