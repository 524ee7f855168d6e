package entity

import "time"

// Permiso capacidad con nombre que se asigna a un rol (módulo) vía modulo_permisos.
type Permiso struct {
	ID                string
	Nombre            string
	Descripcion       string
	FechaCreacion     time.Time
	FechaModificacion time.Time
}

// ModuloPermiso fila de la tabla puente rol ↔ permiso.
type ModuloPermiso struct {
	Modulo          string
	PermisoID       string
	FechaAsignacion time.Time
}
