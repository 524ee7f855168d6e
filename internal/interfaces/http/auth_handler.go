package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/auth"
	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// AuthHandler maneja login, logout y datos de la sesión.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  usuario es el email o la cédula. Deja la cookie session_token y devuelve el token para clientes Bearer.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in, c.IP())
	if err != nil {
		return handleError(c, h.log, err)
	}
	setSessionCookie(c, h.cookie, out.Token, out.ExpiresAt)
	return ok(c, fiber.StatusOK, out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetClaims(c), c.IP()); err != nil {
		return handleError(c, h.log, err)
	}
	clearSessionCookie(c, h.cookie)
	return okMessage(c, "sesión cerrada")
}

// Me godoc
// @Summary      Usuario en sesión y módulos visibles
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.SessionResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña propia
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "actual, nueva"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	if err := h.uc.ChangePassword(c.UserContext(), actor(c), in); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "contraseña actualizada")
}
