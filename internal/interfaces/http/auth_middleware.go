package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "user_role"
	LocalClaims   = "claims"
)

// SessionCookie nombre de la cookie de sesión; los clientes que no usan cookies envían Bearer.
const SessionCookie = "session_token"

// HeaderSessionToken devuelve el token renovado a clientes Bearer.
const HeaderSessionToken = "X-Session-Token"

// sessionAuthenticator lo implementa *auth.AuthUseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
	Refresh(claims *jwt.Claims) (string, *jwt.Claims, error)
}

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Secure bool
}

// AuthMiddleware valida el token (cookie o Bearer), verifica que la sesión no esté cerrada y
// la renueva: cada petición autenticada reinicia el tiempo de inactividad.
func AuthMiddleware(authn sessionAuthenticator, cookie CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, fromCookie, err := extractToken(c)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", err.Error())
		}
		claims, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) || errors.Is(err, domain.ErrSessionRevoked) {
				clearSessionCookie(c, cookie)
				return fail(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", "la sesión expiró por inactividad, inicie sesión de nuevo")
			}
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido")
		}
		if claims.Role == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye el rol del usuario")
		}

		if renewed, rc, err := authn.Refresh(claims); err == nil {
			if fromCookie {
				setSessionCookie(c, cookie, renewed, rc.ExpiresAt.Time)
			} else {
				c.Set(HeaderSessionToken, renewed)
			}
			claims = rc
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.UserName)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) (string, bool, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false, errors.New("formato: Bearer <token>")
		}
		tok := strings.TrimSpace(parts[1])
		if tok == "" {
			return "", false, errors.New("token vacío")
		}
		return tok, false, nil
	}
	if tok := c.Cookies(SessionCookie); tok != "" {
		return tok, true, nil
	}
	return "", false, errors.New("sesión requerida")
}

func setSessionCookie(c *fiber.Ctx, cfg CookieConfig, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserName devuelve el nombre del usuario en sesión.
func GetUserName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserName).(string)
	return s
}

// GetRole devuelve el rol del usuario en sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetClaims devuelve los claims de la sesión o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	cl, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return cl
}

func actor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{
		UserID:   GetUserID(c),
		UserName: GetUserName(c),
		Role:     GetRole(c),
		IP:       c.IP(),
	}
}
