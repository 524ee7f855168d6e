package dto

import "time"

// CreateAgendamientoRequest formulario de agendamiento de visita.
type CreateAgendamientoRequest struct {
	CedulaCliente   string `json:"cedula_cliente" validate:"required,documento"`
	FechaVisita     string `json:"fecha_visita" validate:"required,datetime=2006-01-02"`
	FranjaVisita    string `json:"franja_visita" validate:"required,oneof=AM PM"`
	TecnicoAsignado string `json:"tecnico_asignado" validate:"required,min=3,max=100"`
	EstadoVisita    string `json:"estado_visita" validate:"omitempty,oneof=Pendiente Programada Reprogramada Completada Cancelada"`
	Notas           string `json:"notas" validate:"max=500"`
}

// UpdateAgendamientoRequest edición parcial (modal de edición).
type UpdateAgendamientoRequest struct {
	FechaVisita     *string `json:"fecha_visita" validate:"omitempty,datetime=2006-01-02"`
	FranjaVisita    *string `json:"franja_visita" validate:"omitempty,oneof=AM PM"`
	TecnicoAsignado *string `json:"tecnico_asignado" validate:"omitempty,min=3,max=100"`
	EstadoVisita    *string `json:"estado_visita" validate:"omitempty,oneof=Pendiente Programada Reprogramada Completada Cancelada"`
	Notas           *string `json:"notas" validate:"omitempty,max=500"`
}

// AgendamientoResponse salida de una visita.
type AgendamientoResponse struct {
	ID              string    `json:"id"`
	CedulaCliente   string    `json:"cedula_cliente"`
	FechaVisita     string    `json:"fecha_visita"`
	FranjaVisita    string    `json:"franja_visita"`
	TecnicoAsignado string    `json:"tecnico_asignado"`
	EstadoVisita    string    `json:"estado_visita"`
	Notas           string    `json:"notas"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AgendamientoListResponse lista paginada de visitas.
type AgendamientoListResponse struct {
	Items []AgendamientoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// AgendamientoListQuery parámetros de consulta del listado.
type AgendamientoListQuery struct {
	Search  string `query:"q"`
	Estado  string `query:"estado"`
	Tecnico string `query:"tecnico"`
	Desde   string `query:"desde"`
	Hasta   string `query:"hasta"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}
