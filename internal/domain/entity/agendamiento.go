package entity

import "time"

// Franjas horarias de visita.
const (
	FranjaAM = "AM"
	FranjaPM = "PM"
)

// Estados de la visita de instalación.
const (
	VisitaPendiente    = "Pendiente"
	VisitaProgramada   = "Programada"
	VisitaReprogramada = "Reprogramada"
	VisitaCompletada   = "Completada"
	VisitaCancelada    = "Cancelada"
)

// Agendamiento visita de instalación programada para un cliente (cedula_cliente → ventas.cedula).
type Agendamiento struct {
	ID              string
	CedulaCliente   string
	FechaVisita     time.Time
	FranjaVisita    string
	TecnicoAsignado string
	EstadoVisita    string
	Notas           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
