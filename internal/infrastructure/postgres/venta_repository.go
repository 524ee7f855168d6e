package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, cedula, nombre, telefono1, telefono2, email, municipio, vereda, coordenadas,
	tecnologia, plan, num_servicio, fecha, notas, vendedor_cedula, created_at`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una venta.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ventas (`+ventaColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		v.ID, v.Cedula, v.Nombre, v.Telefono1, v.Telefono2, v.Email, v.Municipio, v.Vereda, v.Coordenadas,
		v.Tecnologia, v.Plan, v.NumServicio, v.Fecha, v.Notas, v.VendedorCedula, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta; nil si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	return r.getOne(ctx, `WHERE id::text = $1`, id)
}

// GetLatestByCedula venta más reciente del cliente.
func (r *VentaRepo) GetLatestByCedula(ctx context.Context, cedula string) (*entity.Venta, error) {
	return r.getOne(ctx, `WHERE cedula = $1 ORDER BY fecha DESC, created_at DESC LIMIT 1`, cedula)
}

func (r *VentaRepo) getOne(ctx context.Context, tail string, arg any) (*entity.Venta, error) {
	v, err := scanVenta(r.q.QueryRow(ctx, `SELECT `+ventaColumns+` FROM ventas `+tail, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// ExistsByCedula informa si el cliente tiene al menos una venta.
func (r *VentaRepo) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ventas WHERE cedula = $1)`, cedula).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists venta: %w", err)
	}
	return ok, nil
}

// Update actualiza los datos editables; vendedor y created_at no cambian.
func (r *VentaRepo) Update(ctx context.Context, v *entity.Venta) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE ventas SET
			cedula = $2, nombre = $3, telefono1 = $4, telefono2 = $5, email = $6, municipio = $7,
			vereda = $8, coordenadas = $9, tecnologia = $10, plan = $11, num_servicio = $12,
			fecha = $13, notas = $14
		WHERE id = $1`,
		v.ID, v.Cedula, v.Nombre, v.Telefono1, v.Telefono2, v.Email, v.Municipio,
		v.Vereda, v.Coordenadas, v.Tecnologia, v.Plan, v.NumServicio, v.Fecha, v.Notas,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta.
func (r *VentaRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ventas, más recientes primero.
func (r *VentaRepo) List(ctx context.Context, f repository.VentaFilter) ([]*entity.Venta, int, error) {
	var w where
	if f.Search != "" {
		w.add("(cedula ILIKE ? OR nombre ILIKE ? OR num_servicio ILIKE ?)", likePattern(f.Search))
	}
	if f.Municipio != "" {
		w.add("municipio = ?", f.Municipio)
	}
	if f.Tecnologia != "" {
		w.add("tecnologia = ?", f.Tecnologia)
	}
	if f.VendedorCedula != "" {
		w.add("vendedor_cedula = ?", f.VendedorCedula)
	}
	if f.Desde != nil {
		w.add("fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		w.add("fecha <= ?", *f.Hasta)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ventas`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ventas: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+ventaColumns+` FROM ventas`+w.sql()+
		` ORDER BY fecha DESC, created_at DESC LIMIT `+w.next(f.Limit)+` OFFSET `+w.next(f.Offset), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ventas: %w", err)
	}
	out, err := collectVentas(rows)
	return out, total, err
}

// ListBetween ventas del rango de fechas, en orden cronológico (exportación).
func (r *VentaRepo) ListBetween(ctx context.Context, desde, hasta time.Time) ([]*entity.Venta, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ventaColumns+` FROM ventas
		WHERE fecha BETWEEN $1 AND $2 ORDER BY fecha, created_at`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ventas between: %w", err)
	}
	return collectVentas(rows)
}

func collectVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	defer rows.Close()
	var out []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.Cedula, &v.Nombre, &v.Telefono1, &v.Telefono2, &v.Email, &v.Municipio, &v.Vereda, &v.Coordenadas,
		&v.Tecnologia, &v.Plan, &v.NumServicio, &v.Fecha, &v.Notas, &v.VendedorCedula, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
