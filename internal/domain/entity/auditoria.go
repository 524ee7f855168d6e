package entity

import "time"

// Acciones registradas en auditoría.
const (
	AccionCrear      = "crear"
	AccionActualizar = "actualizar"
	AccionEliminar   = "eliminar"
	AccionLogin      = "login"
	AccionLogout     = "logout"
)

// Auditoria entrada de la bitácora de cambios.
type Auditoria struct {
	ID            string
	UsuarioID     string
	UsuarioNombre string
	Accion        string
	Entidad       string // "venta", "agendamiento", "permiso", ...
	EntidadID     string
	Detalle       string
	IP            string
	CreatedAt     time.Time
}
