package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del aprovisionamiento de equipos.
const (
	AprovPendiente  = "Pendiente"
	AprovEnProceso  = "En proceso"
	AprovCompletado = "Completado"
)

// Aprovisionamiento equipos y direccionamiento asignados a la instalación de un cliente.
type Aprovisionamiento struct {
	ID                      string
	CedulaCliente           string
	TipoRadio               string
	MacSerialRadio          string
	TipoRouterONU           string
	MacSerialRouter         string
	IPNavegacion            string
	IPGestion               string
	MetrosCable             decimal.Decimal
	TipoCable               string
	Notas                   string
	EstadoAprovisionamiento string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
