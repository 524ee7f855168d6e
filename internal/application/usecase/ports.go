package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// Actor usuario en sesión que ejecuta la operación (para auditoría y vendedor de la venta).
type Actor struct {
	UserID   string
	UserName string
	Role     string
	IP       string
}

// Auditor registra cambios en la bitácora. Nunca falla la operación que audita.
type Auditor interface {
	Record(ctx context.Context, actor Actor, accion, entidad, entidadID, detalle string)
}

// ModulosTxRunner ejecuta fn dentro de una transacción con el repositorio de módulos atado a ella.
type ModulosTxRunner interface {
	RunModulos(ctx context.Context, fn func(repo repository.ModuloRepository) error) error
}

// VisitNotifier avisa al cliente la fecha y franja de su visita de instalación.
type VisitNotifier interface {
	NotifyVisita(ctx context.Context, venta *entity.Venta, visita *entity.Agendamiento) error
}

// RoleValidator informa si un rol es asignable a un usuario.
type RoleValidator interface {
	IsValidRole(ctx context.Context, role string) (bool, error)
}

// nopAuditor se usa cuando no se inyecta auditoría (tests, herramientas).
type nopAuditor struct{}

func (nopAuditor) Record(context.Context, Actor, string, string, string, string) {}

func auditorOrNop(a Auditor) Auditor {
	if a == nil {
		return nopAuditor{}
	}
	return a
}

// VentaExporter escribe ventas en un formato descargable (CSV para Excel).
type VentaExporter interface {
	WriteVentas(w io.Writer, ventas []*entity.Venta) error
}

// OrdenData datos que se imprimen en la orden de instalación.
type OrdenData struct {
	Venta             *entity.Venta
	Agendamiento      *entity.Agendamiento
	Aprovisionamiento *entity.Aprovisionamiento
	GeneradoPor       string
}

// OrdenGenerator genera el PDF de la orden de instalación.
type OrdenGenerator interface {
	GenerateOrden(data OrdenData) ([]byte, error)
}
