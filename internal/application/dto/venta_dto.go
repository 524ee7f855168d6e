package dto

import "time"

// CreateVentaRequest formulario de venta. Fecha en formato YYYY-MM-DD; vacía = hoy.
type CreateVentaRequest struct {
	Cedula      string `json:"cedula" validate:"required,documento"`
	Nombre      string `json:"nombre" validate:"required,nombre"`
	Telefono1   string `json:"telefono1" validate:"required,telefono"`
	Telefono2   string `json:"telefono2" validate:"omitempty,telefono"`
	Email       string `json:"email" validate:"omitempty,email,max=150"`
	Municipio   string `json:"municipio" validate:"required,max=100"`
	Vereda      string `json:"vereda" validate:"max=100"`
	Coordenadas string `json:"coordenadas" validate:"omitempty,coordenadas"`
	Tecnologia  string `json:"tecnologia" validate:"required,oneof='Fibra óptica' 'Radio enlace'"`
	Plan        string `json:"plan" validate:"required,max=100"`
	NumServicio string `json:"num_servicio" validate:"omitempty,alphanum,max=30"`
	Fecha       string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Notas       string `json:"notas" validate:"max=500"`
}

// UpdateVentaRequest edición parcial de una venta.
type UpdateVentaRequest struct {
	Cedula      *string `json:"cedula" validate:"omitempty,documento"`
	Nombre      *string `json:"nombre" validate:"omitempty,nombre"`
	Telefono1   *string `json:"telefono1" validate:"omitempty,telefono"`
	Telefono2   *string `json:"telefono2" validate:"omitempty,telefono"`
	Email       *string `json:"email" validate:"omitempty,email,max=150"`
	Municipio   *string `json:"municipio" validate:"omitempty,min=1,max=100"`
	Vereda      *string `json:"vereda" validate:"omitempty,max=100"`
	Coordenadas *string `json:"coordenadas" validate:"omitempty,coordenadas"`
	Tecnologia  *string `json:"tecnologia" validate:"omitempty,oneof='Fibra óptica' 'Radio enlace'"`
	Plan        *string `json:"plan" validate:"omitempty,min=1,max=100"`
	NumServicio *string `json:"num_servicio" validate:"omitempty,alphanum,max=30"`
	Fecha       *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Notas       *string `json:"notas" validate:"omitempty,max=500"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID             string    `json:"id"`
	Cedula         string    `json:"cedula"`
	Nombre         string    `json:"nombre"`
	Telefono1      string    `json:"telefono1"`
	Telefono2      string    `json:"telefono2"`
	Email          string    `json:"email"`
	Municipio      string    `json:"municipio"`
	Vereda         string    `json:"vereda"`
	Coordenadas    string    `json:"coordenadas"`
	Tecnologia     string    `json:"tecnologia"`
	Plan           string    `json:"plan"`
	NumServicio    string    `json:"num_servicio"`
	Fecha          string    `json:"fecha"`
	Notas          string    `json:"notas"`
	VendedorCedula string    `json:"vendedor_cedula"`
	CreatedAt      time.Time `json:"created_at"`
}

// VentaListResponse lista paginada de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// VentaListQuery parámetros de consulta del listado.
type VentaListQuery struct {
	Search     string `query:"q"`
	Municipio  string `query:"municipio"`
	Tecnologia string `query:"tecnologia"`
	Vendedor   string `query:"vendedor"`
	Desde      string `query:"desde"`
	Hasta      string `query:"hasta"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}
