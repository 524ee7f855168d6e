package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// moduleChecker es el contrato mínimo que necesita el middleware para verificar módulos.
// Lo implementa *usecase.ModuleService; el uso de interfaz evita el import circular.
type moduleChecker interface {
	HasModule(ctx context.Context, role, moduleKey string) (bool, error)
	HasPermission(ctx context.Context, role, permiso string) (bool, error)
}

// RequireModule verifica que el rol de la sesión tenga el módulo (rol → modulo_permisos → permisos).
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 403 MODULE_FORBIDDEN → el rol no tiene el permiso del módulo.
//   - 503 → fallo de infraestructura al consultar la DB.
func RequireModule(moduleKey string, checker moduleChecker, log *logger.Logger) fiber.Handler {
	return gate(moduleKey, checker.HasModule, log, "MODULE_FORBIDDEN", "su rol no tiene acceso al módulo '"+moduleKey+"'")
}

// RequirePermission igual que RequireModule para capacidades que no son módulos (ej. exportar_ventas).
func RequirePermission(permiso string, checker moduleChecker, log *logger.Logger) fiber.Handler {
	return gate(permiso, checker.HasPermission, log, "FORBIDDEN", "su rol no tiene el permiso '"+permiso+"'")
}

func gate(key string, check func(context.Context, string, string) (bool, error), log *logger.Logger, code, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "rol no encontrado en la sesión")
		}
		allowed, err := check(c.UserContext(), role, key)
		if err != nil {
			log.Error().Err(err).Str("role", role).Str("key", key).Msg("verificación de módulo")
			return fail(c, fiber.StatusServiceUnavailable, "MODULE_CHECK_FAILED", "no se pudo verificar el acceso, intente más tarde")
		}
		if !allowed {
			return fail(c, fiber.StatusForbidden, code, msg)
		}
		return c.Next()
	}
}
