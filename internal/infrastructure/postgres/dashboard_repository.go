package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// groupExpr columnas permitidas para VentasAgrupadas. Nunca se interpola texto del cliente.
var groupExpr = map[repository.VentaGroup]string{
	repository.GroupTecnologia: "v.tecnologia",
	repository.GroupPlan:       "v.plan",
	repository.GroupMunicipio:  "v.municipio",
	repository.GroupVendedor:   "COALESCE(a.nombre, v.vendedor_cedula)",
}

// DashboardRepo consultas de solo lectura para el dashboard y el panel de prioridades.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountVentas total de ventas con fecha en el rango.
func (r *DashboardRepo) CountVentas(ctx context.Context, desde, hasta time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ventas WHERE fecha BETWEEN $1 AND $2`, desde, hasta).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountVentas: %w", err)
	}
	return n, nil
}

// VentasPorDia solo devuelve días con ventas; el caso de uso completa los huecos.
func (r *DashboardRepo) VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]repository.SerieDia, error) {
	rows, err := r.q.Query(ctx, `
		SELECT fecha, COUNT(*) FROM ventas
		WHERE fecha BETWEEN $1 AND $2
		GROUP BY fecha ORDER BY fecha`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("dashboard.VentasPorDia: %w", err)
	}
	defer rows.Close()
	var out []repository.SerieDia
	for rows.Next() {
		var s repository.SerieDia
		if err := rows.Scan(&s.Fecha, &s.Total); err != nil {
			return nil, fmt.Errorf("dashboard.VentasPorDia scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// VentasAgrupadas cuenta ventas por la columna indicada, de mayor a menor.
// Por vendedor se muestra el nombre del usuario si aún existe.
func (r *DashboardRepo) VentasAgrupadas(ctx context.Context, group repository.VentaGroup, desde, hasta time.Time) ([]repository.Conteo, error) {
	expr, ok := groupExpr[group]
	if !ok {
		return nil, fmt.Errorf("dashboard.VentasAgrupadas: agrupación %q no soportada", group)
	}
	return r.conteos(ctx, `
		SELECT `+expr+` AS etiqueta, COUNT(*) AS total
		FROM ventas v
		LEFT JOIN administrador a ON a.cedula = v.vendedor_cedula
		WHERE v.fecha BETWEEN $1 AND $2
		GROUP BY 1 ORDER BY total DESC, etiqueta`, desde, hasta)
}

// AgendamientosPorEstado agrupa visitas por estado según su fecha de visita.
func (r *DashboardRepo) AgendamientosPorEstado(ctx context.Context, desde, hasta time.Time) ([]repository.Conteo, error) {
	return r.conteos(ctx, `
		SELECT estado_visita, COUNT(*) AS total FROM agendamiento
		WHERE fecha_visita BETWEEN $1 AND $2
		GROUP BY estado_visita ORDER BY total DESC, estado_visita`, desde, hasta)
}

// AprovisionamientosPorEstado agrupa aprovisionamientos registrados en el período.
func (r *DashboardRepo) AprovisionamientosPorEstado(ctx context.Context, desde, hasta time.Time) ([]repository.Conteo, error) {
	return r.conteos(ctx, `
		SELECT estado_aprovisionamiento, COUNT(*) AS total FROM aprovisionamiento
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY estado_aprovisionamiento ORDER BY total DESC, estado_aprovisionamiento`, desde, hasta)
}

func (r *DashboardRepo) conteos(ctx context.Context, query string, desde, hasta time.Time) ([]repository.Conteo, error) {
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("dashboard.conteos: %w", err)
	}
	defer rows.Close()
	var out []repository.Conteo
	for rows.Next() {
		var c repository.Conteo
		if err := rows.Scan(&c.Etiqueta, &c.Total); err != nil {
			return nil, fmt.Errorf("dashboard.conteos scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MetrosCable suma metros de aprovisionamientos completados. COALESCE devuelve cero sin filas.
func (r *DashboardRepo) MetrosCable(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(metros_cable), 0) FROM aprovisionamiento
		WHERE estado_aprovisionamiento = 'Completado' AND updated_at BETWEEN $1 AND $2`, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.MetrosCable: %w", err)
	}
	return total, nil
}

// PanelRows une cada venta con la visita y el aprovisionamiento más recientes de su cédula.
func (r *DashboardRepo) PanelRows(ctx context.Context, f repository.PanelFilter) ([]repository.PanelRow, error) {
	var w where
	if f.Search != "" {
		w.add("(v.cedula ILIKE ? OR v.nombre ILIKE ?)", likePattern(f.Search))
	}
	if f.Desde != nil {
		w.add("v.fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		w.add("v.fecha <= ?", *f.Hasta)
	}
	rows, err := r.q.Query(ctx, `
		SELECT v.id, v.cedula, v.nombre, v.telefono1, v.municipio, v.tecnologia, v.plan, v.fecha,
		       COALESCE(ag.id::text, ''), ag.fecha_visita, COALESCE(ag.franja_visita, ''),
		       COALESCE(ag.tecnico_asignado, ''), COALESCE(ag.estado_visita, ''),
		       COALESCE(ap.id::text, ''), COALESCE(ap.estado_aprovisionamiento, '')
		FROM ventas v
		LEFT JOIN LATERAL (
		    SELECT id, fecha_visita, franja_visita, tecnico_asignado, estado_visita
		    FROM agendamiento WHERE cedula_cliente = v.cedula
		    ORDER BY created_at DESC LIMIT 1
		) ag ON TRUE
		LEFT JOIN LATERAL (
		    SELECT id, estado_aprovisionamiento
		    FROM aprovisionamiento WHERE cedula_cliente = v.cedula
		    ORDER BY created_at DESC LIMIT 1
		) ap ON TRUE`+w.sql()+`
		ORDER BY v.fecha, v.created_at`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard.PanelRows: %w", err)
	}
	defer rows.Close()
	var out []repository.PanelRow
	for rows.Next() {
		var p repository.PanelRow
		if err := rows.Scan(&p.VentaID, &p.Cedula, &p.Nombre, &p.Telefono1, &p.Municipio, &p.Tecnologia, &p.Plan,
			&p.FechaVenta, &p.AgendamientoID, &p.FechaVisita, &p.FranjaVisita, &p.TecnicoAsignado, &p.EstadoVisita,
			&p.AprovisionamientoID, &p.EstadoAprov); err != nil {
			return nil, fmt.Errorf("dashboard.PanelRows scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
