package dto

// PanelItemDTO venta con su estado global y prioridad.
type PanelItemDTO struct {
	VentaID             string `json:"venta_id"`
	Cedula              string `json:"cedula"`
	Nombre              string `json:"nombre"`
	Telefono1           string `json:"telefono1"`
	Municipio           string `json:"municipio"`
	Tecnologia          string `json:"tecnologia"`
	Plan                string `json:"plan"`
	FechaVenta          string `json:"fecha_venta"`
	AgendamientoID      string `json:"agendamiento_id,omitempty"`
	FechaVisita         string `json:"fecha_visita,omitempty"`
	FranjaVisita        string `json:"franja_visita,omitempty"`
	TecnicoAsignado     string `json:"tecnico_asignado,omitempty"`
	EstadoVisita        string `json:"estado_visita,omitempty"`
	AprovisionamientoID string `json:"aprovisionamiento_id,omitempty"`
	EstadoAprov         string `json:"estado_aprovisionamiento,omitempty"`
	EstadoGlobal        string `json:"estado_global"`
	Prioridad           int    `json:"prioridad"`
}

// PanelDTO respuesta de GET /api/panel.
type PanelDTO struct {
	Items   []PanelItemDTO `json:"items"`
	Resumen []ConteoDTO    `json:"resumen"` // total por estado global, en orden de prioridad
}

// PanelQuery parámetros del panel.
type PanelQuery struct {
	Search string `query:"q"`
	Estado string `query:"estado"`
	Desde  string `query:"desde"`
	Hasta  string `query:"hasta"`
}
