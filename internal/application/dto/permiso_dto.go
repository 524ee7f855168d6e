package dto

import "time"

// CreatePermisoRequest entrada para crear un permiso.
type CreatePermisoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=3,max=100"`
	Descripcion string `json:"descripcion" validate:"max=255"`
}

// UpdatePermisoRequest entrada parcial para actualizar un permiso.
type UpdatePermisoRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=3,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=255"`
}

// PermisoResponse salida de un permiso.
type PermisoResponse struct {
	ID                string    `json:"id"`
	Nombre            string    `json:"nombre"`
	Descripcion       string    `json:"descripcion"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}

// PermisoListResponse lista paginada de permisos.
type PermisoListResponse struct {
	Items []PermisoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
