// Package panel consolida el estado de una venta a partir de su visita y su aprovisionamiento.
package panel

import "github.com/jhoicas/ventas-instalaciones/internal/domain/entity"

// Estados globales, ordenados por prioridad (1 = requiere atención primero).
const (
	EstadoSinAgendar       = "Sin agendar"
	EstadoPorConfirmar     = "Por confirmar"
	EstadoVisitaProgramada = "Visita programada"
	EstadoPendienteAprov   = "Pendiente aprovisionamiento"
	EstadoInstalado        = "Instalado"
	EstadoCancelado        = "Cancelado"
)

// Estado estado global con su prioridad.
type Estado struct {
	Nombre    string
	Prioridad int
}

var (
	sinAgendar       = Estado{EstadoSinAgendar, 1}
	porConfirmar     = Estado{EstadoPorConfirmar, 2}
	visitaProgramada = Estado{EstadoVisitaProgramada, 3}
	pendienteAprov   = Estado{EstadoPendienteAprov, 4}
	instalado        = Estado{EstadoInstalado, 5}
	cancelado        = Estado{EstadoCancelado, 6}
)

// Estados lista todos los estados en orden de prioridad.
func Estados() []Estado {
	return []Estado{sinAgendar, porConfirmar, visitaProgramada, pendienteAprov, instalado, cancelado}
}

// Resolve calcula el estado global. estadoVisita y estadoAprov vacíos significan
// que no existe el registro correspondiente.
//
// Un aprovisionamiento Completado gana sobre cualquier estado de visita.
func Resolve(estadoVisita, estadoAprov string) Estado {
	if estadoAprov == entity.AprovCompletado {
		return instalado
	}
	switch estadoVisita {
	case "":
		if estadoAprov != "" {
			return pendienteAprov
		}
		return sinAgendar
	case entity.VisitaCancelada:
		return cancelado
	case entity.VisitaCompletada:
		return pendienteAprov
	case entity.VisitaProgramada:
		if estadoAprov != "" {
			return pendienteAprov
		}
		return visitaProgramada
	default: // Pendiente, Reprogramada
		return porConfirmar
	}
}

// IsValid informa si nombre corresponde a un estado global conocido.
func IsValid(nombre string) bool {
	for _, e := range Estados() {
		if e.Nombre == nombre {
			return true
		}
	}
	return false
}
