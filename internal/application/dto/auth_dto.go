package dto

import "time"

// LoginRequest credenciales: usuario es el email o la cédula.
type LoginRequest struct {
	Usuario  string `json:"usuario" form:"usuario" validate:"required,max=150"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// LoginResponse token de sesión, usuario y módulos visibles.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      UsuarioResponse `json:"user"`
	Modulos   []ModuloInfo    `json:"modulos"`
}

// SessionResponse respuesta de GET /api/auth/me.
type SessionResponse struct {
	User    UsuarioResponse `json:"user"`
	Modulos []ModuloInfo    `json:"modulos"`
}

// ChangePasswordRequest cambio de contraseña del usuario en sesión.
type ChangePasswordRequest struct {
	Actual string `json:"actual" validate:"required"`
	Nueva  string `json:"nueva" validate:"required,min=8,max=72,password"`
}
