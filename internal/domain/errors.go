package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrVentaNotFound     = errors.New("no existe una venta para la cédula del cliente")
	ErrTooManyAttempts   = errors.New("demasiados intentos de inicio de sesión")
	ErrSessionRevoked    = errors.New("sesión cerrada")
	ErrInvalidDateRange  = errors.New("rango de fechas inválido")
	ErrCannotDeleteSelf  = errors.New("no puede eliminar su propio usuario")
	ErrInvalidCredential = errors.New("la contraseña actual no coincide")
)
