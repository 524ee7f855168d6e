package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VentaGroup columna por la que se agrupan las ventas en el dashboard.
type VentaGroup string

const (
	GroupTecnologia VentaGroup = "tecnologia"
	GroupPlan       VentaGroup = "plan"
	GroupMunicipio  VentaGroup = "municipio"
	GroupVendedor   VentaGroup = "vendedor"
)

// Conteo par etiqueta/total de un GROUP BY.
type Conteo struct {
	Etiqueta string
	Total    int
}

// SerieDia total de ventas de un día.
type SerieDia struct {
	Fecha time.Time
	Total int
}

// PanelRow venta con su visita y aprovisionamiento más recientes (por cédula).
// Los campos de visita y aprovisionamiento quedan vacíos si no existe el registro.
type PanelRow struct {
	VentaID             string
	Cedula              string
	Nombre              string
	Telefono1           string
	Municipio           string
	Tecnologia          string
	Plan                string
	FechaVenta          time.Time
	AgendamientoID      string
	FechaVisita         *time.Time
	FranjaVisita        string
	TecnicoAsignado     string
	EstadoVisita        string
	AprovisionamientoID string
	EstadoAprov         string
}

// PanelFilter filtros de la consulta del panel.
type PanelFilter struct {
	Search string
	Desde  *time.Time
	Hasta  *time.Time
}

// DashboardRepository consultas de solo lectura para el dashboard y el panel.
type DashboardRepository interface {
	CountVentas(ctx context.Context, desde, hasta time.Time) (int, error)
	VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]SerieDia, error)
	VentasAgrupadas(ctx context.Context, group VentaGroup, desde, hasta time.Time) ([]Conteo, error)
	AgendamientosPorEstado(ctx context.Context, desde, hasta time.Time) ([]Conteo, error)
	AprovisionamientosPorEstado(ctx context.Context, desde, hasta time.Time) ([]Conteo, error)
	// MetrosCable suma metros de cable de aprovisionamientos completados en el período.
	MetrosCable(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	PanelRows(ctx context.Context, f PanelFilter) ([]PanelRow, error)
}
