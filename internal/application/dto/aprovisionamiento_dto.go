package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAprovisionamientoRequest formulario de registro de aprovisionamiento.
type CreateAprovisionamientoRequest struct {
	CedulaCliente           string          `json:"cedula_cliente" validate:"required,documento"`
	TipoRadio               string          `json:"tipo_radio" validate:"max=100"`
	MacSerialRadio          string          `json:"mac_serial_radio" validate:"omitempty,macserial"`
	TipoRouterONU           string          `json:"tipo_router_onu" validate:"required,max=100"`
	MacSerialRouter         string          `json:"mac_serial_router" validate:"required,macserial"`
	IPNavegacion            string          `json:"ip_navegacion" validate:"omitempty,ipv4"`
	IPGestion               string          `json:"ip_gestion" validate:"omitempty,ipv4"`
	MetrosCable             decimal.Decimal `json:"metros_cable" validate:"min=0"`
	TipoCable               string          `json:"tipo_cable" validate:"max=50"`
	Notas                   string          `json:"notas" validate:"max=500"`
	EstadoAprovisionamiento string          `json:"estado_aprovisionamiento" validate:"omitempty,oneof=Pendiente 'En proceso' Completado"`
}

// UpdateAprovisionamientoRequest edición parcial.
type UpdateAprovisionamientoRequest struct {
	TipoRadio               *string          `json:"tipo_radio" validate:"omitempty,max=100"`
	MacSerialRadio          *string          `json:"mac_serial_radio" validate:"omitempty,macserial"`
	TipoRouterONU           *string          `json:"tipo_router_onu" validate:"omitempty,max=100"`
	MacSerialRouter         *string          `json:"mac_serial_router" validate:"omitempty,macserial"`
	IPNavegacion            *string          `json:"ip_navegacion" validate:"omitempty,ipv4"`
	IPGestion               *string          `json:"ip_gestion" validate:"omitempty,ipv4"`
	MetrosCable             *decimal.Decimal `json:"metros_cable" validate:"omitempty,min=0"`
	TipoCable               *string          `json:"tipo_cable" validate:"omitempty,max=50"`
	Notas                   *string          `json:"notas" validate:"omitempty,max=500"`
	EstadoAprovisionamiento *string          `json:"estado_aprovisionamiento" validate:"omitempty,oneof=Pendiente 'En proceso' Completado"`
}

// AprovisionamientoResponse salida de un aprovisionamiento.
type AprovisionamientoResponse struct {
	ID                      string          `json:"id"`
	CedulaCliente           string          `json:"cedula_cliente"`
	TipoRadio               string          `json:"tipo_radio"`
	MacSerialRadio          string          `json:"mac_serial_radio"`
	TipoRouterONU           string          `json:"tipo_router_onu"`
	MacSerialRouter         string          `json:"mac_serial_router"`
	IPNavegacion            string          `json:"ip_navegacion"`
	IPGestion               string          `json:"ip_gestion"`
	MetrosCable             decimal.Decimal `json:"metros_cable"`
	TipoCable               string          `json:"tipo_cable"`
	Notas                   string          `json:"notas"`
	EstadoAprovisionamiento string          `json:"estado_aprovisionamiento"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// AprovisionamientoListResponse lista paginada.
type AprovisionamientoListResponse struct {
	Items []AprovisionamientoResponse `json:"items"`
	Page  PageResponse                `json:"page"`
}

// ClienteResumenResponse datos del cliente para precargar el formulario de aprovisionamiento.
type ClienteResumenResponse struct {
	Venta             VentaResponse              `json:"venta"`
	Agendamiento      *AgendamientoResponse      `json:"agendamiento"`
	Aprovisionamiento *AprovisionamientoResponse `json:"aprovisionamiento"`
}
