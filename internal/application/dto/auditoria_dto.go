package dto

import "time"

// AuditoriaResponse entrada de la bitácora.
type AuditoriaResponse struct {
	ID            string    `json:"id"`
	UsuarioID     string    `json:"usuario_id"`
	UsuarioNombre string    `json:"usuario_nombre"`
	Accion        string    `json:"accion"`
	Entidad       string    `json:"entidad"`
	EntidadID     string    `json:"entidad_id"`
	Detalle       string    `json:"detalle"`
	IP            string    `json:"ip"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuditoriaListResponse lista paginada de la bitácora.
type AuditoriaListResponse struct {
	Items []AuditoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// MunicipioResponse municipio del catálogo DANE.
type MunicipioResponse struct {
	Codigo       string `json:"codigo"`
	Nombre       string `json:"nombre"`
	Departamento string `json:"departamento"`
}
