package dto

import "github.com/shopspring/decimal"

// ConteoDTO punto de una serie agrupada (etiqueta → total).
type ConteoDTO struct {
	Etiqueta string `json:"etiqueta"`
	Total    int    `json:"total"`
}

// SerieDiaDTO ventas de un día (YYYY-MM-DD).
type SerieDiaDTO struct {
	Fecha string `json:"fecha"`
	Total int    `json:"total"`
}

// DashboardDTO respuesta de GET /api/dashboard para las gráficas del cliente.
type DashboardDTO struct {
	Desde                       string          `json:"desde"`
	Hasta                       string          `json:"hasta"`
	TotalVentas                 int             `json:"total_ventas"`
	VentasPorDia                []SerieDiaDTO   `json:"ventas_por_dia"`
	VentasPorTecnologia         []ConteoDTO     `json:"ventas_por_tecnologia"`
	VentasPorPlan               []ConteoDTO     `json:"ventas_por_plan"`
	VentasPorMunicipio          []ConteoDTO     `json:"ventas_por_municipio"`
	VentasPorVendedor           []ConteoDTO     `json:"ventas_por_vendedor"`
	AgendamientosPorEstado      []ConteoDTO     `json:"agendamientos_por_estado"`
	AprovisionamientosPorEstado []ConteoDTO     `json:"aprovisionamientos_por_estado"`
	MetrosCableInstalados       decimal.Decimal `json:"metros_cable_instalados"`
	Periodo                     string          `json:"periodo"` // ej: "Octubre 2026"
}

// DashboardQuery parámetros de rango (YYYY-MM-DD).
type DashboardQuery struct {
	Desde string `query:"desde"`
	Hasta string `query:"hasta"`
}
