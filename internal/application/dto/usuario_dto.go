package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUsuarioRequest struct {
	Cedula   string `json:"cedula" validate:"required,cedula"`
	Nombre   string `json:"nombre" validate:"required,nombre"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72,password"`
	Modulo   string `json:"modulo" validate:"required,max=50"`
}

// UpdateUsuarioRequest entrada parcial; Password vacío conserva la actual.
type UpdateUsuarioRequest struct {
	Cedula   *string `json:"cedula" validate:"omitempty,cedula"`
	Nombre   *string `json:"nombre" validate:"omitempty,nombre"`
	Email    *string `json:"email" validate:"omitempty,email,max=150"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72,password"`
	Modulo   *string `json:"modulo" validate:"omitempty,max=50"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Cedula        string    `json:"cedula"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Modulo        string    `json:"modulo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
