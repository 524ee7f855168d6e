package entity

import "time"

// RoleAdministrador ve todos los módulos sin consultar permisos.
const RoleAdministrador = "Administrador"

// Administrador usuario del sistema. Modulo es su rol: "Administrador" o el nombre de un módulo.
type Administrador struct {
	ID            string
	Cedula        string
	Nombre        string
	Email         string
	PasswordHash  string // bcrypt
	Modulo        string
	FechaCreacion time.Time
}

// IsAdmin informa si el usuario tiene el rol con acceso total.
func (a *Administrador) IsAdmin() bool {
	return a != nil && a.Modulo == RoleAdministrador
}
