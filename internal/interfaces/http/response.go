package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/pkg/jwt"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// errorMapping status y código de cada error de dominio. El orden importa: los más específicos primero.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrVentaNotFound, fiber.StatusUnprocessableEntity, "VENTA_NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidDateRange, fiber.StatusBadRequest, "INVALID_DATE_RANGE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidCredential, fiber.StatusBadRequest, "INVALID_CREDENTIAL"},
	{domain.ErrCannotDeleteSelf, fiber.StatusBadRequest, "CANNOT_DELETE_SELF"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrTooManyAttempts, fiber.StatusTooManyRequests, "TOO_MANY_ATTEMPTS"},
	{domain.ErrSessionRevoked, fiber.StatusUnauthorized, "SESSION_EXPIRED"},
	{jwt.ErrExpired, fiber.StatusUnauthorized, "SESSION_EXPIRED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// ok responde {"success": true, "data": data}.
func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.Response{Success: true, Data: data})
}

// okMessage responde {"success": true, "message": msg} para operaciones sin cuerpo.
func okMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(dto.Response{Success: true, Message: msg})
}

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// handleError traduce errores de dominio a HTTP. Los no reconocidos se registran y
// se responden con un mensaje genérico.
func handleError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return fail(c, m.status, m.code, err.Error())
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error interno")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno, intente más tarde")
}

// ErrorHandler reemplaza el de Fiber para que 404 de rutas, 405 y pánicos recuperados
// también respondan con el envoltorio.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				code = "BODY_TOO_LARGE"
			}
			return fail(c, fe.Code, code, fe.Message)
		}
		return handleError(c, log, err)
	}
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("requestid").(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func validationError(fields map[string]string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields}
}
