package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
	"github.com/jhoicas/ventas-instalaciones/pkg/jwt"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret  string
	Issuer  string
	Timeout time.Duration // inactividad máxima; cada petición autenticada renueva el token
}

// LimiterConfig límite de intentos fallidos de login.
type LimiterConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// AuthUseCase casos de uso de autenticación y sesión.
type AuthUseCase struct {
	users    repository.AdministradorRepository
	modules  ModuleResolver
	attempts AttemptStore
	revoker  SessionRevoker
	audit    usecase.Auditor
	jwtCfg   JWTConfig
	limits   LimiterConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.AdministradorRepository, modules ModuleResolver, attempts AttemptStore, revoker SessionRevoker, audit usecase.Auditor, jwtCfg JWTConfig, limits LimiterConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if limits.MaxAttempts <= 0 {
		limits.MaxAttempts = 5
	}
	if limits.Window <= 0 {
		limits.Window = 15 * time.Minute
	}
	return &AuthUseCase{
		users:    users,
		modules:  modules,
		attempts: attempts,
		revoker:  revoker,
		audit:    audit,
		jwtCfg:   jwtCfg,
		limits:   limits,
		log:      log.Component("auth"),
	}
}

// Login verifica usuario (email o cédula) y password, genera JWT y retorna token, usuario y módulos.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	ident := strings.ToLower(strings.TrimSpace(in.Usuario))
	if ident == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	key := "login:" + ident
	n, err := uc.attempts.Count(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("auth: contador de intentos: %w", err)
	}
	if n >= uc.limits.MaxAttempts {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := uc.findUser(ctx, ident)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		n, err := uc.attempts.Incr(ctx, key, uc.limits.Window)
		if err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo registrar el intento fallido")
		}
		uc.log.Info().Str("usuario", ident).Str("ip", ip).Int("intentos", n).Msg("login fallido")
		return nil, domain.ErrUnauthorized
	}
	if err := uc.attempts.Reset(ctx, key); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo reiniciar el contador de intentos")
	}

	token, claims, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Session{
		UserID:   user.ID,
		UserName: user.Nombre,
		Role:     user.Modulo,
	}, uc.jwtCfg.Timeout)
	if err != nil {
		return nil, err
	}
	mods, err := uc.modules.VisibleModules(ctx, user.Modulo)
	if err != nil {
		return nil, err
	}
	if uc.audit != nil {
		uc.audit.Record(ctx, usecase.Actor{UserID: user.ID, UserName: user.Nombre, Role: user.Modulo, IP: ip}, entity.AccionLogin, "sesion", user.ID, "")
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      *usecase.ToUsuarioResponse(user),
		Modulos:   usecase.ToModuloInfoDTOs(mods),
	}, nil
}

func (uc *AuthUseCase) findUser(ctx context.Context, ident string) (*entity.Administrador, error) {
	if strings.Contains(ident, "@") {
		return uc.users.GetByEmail(ctx, ident)
	}
	return uc.users.GetByCedula(ctx, ident)
}

// Authenticate valida el token y que su sesión no haya sido cerrada.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, err
	}
	revoked, err := uc.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("auth: consultar revocación: %w", err)
	}
	if revoked {
		return nil, domain.ErrSessionRevoked
	}
	return claims, nil
}

// Refresh renueva la expiración por inactividad conservando la sesión.
func (uc *AuthUseCase) Refresh(claims *jwt.Claims) (string, *jwt.Claims, error) {
	return jwt.Renew(uc.jwtCfg.Secret, claims, uc.jwtCfg.Timeout)
}

// Timeout duración de la sesión por inactividad.
func (uc *AuthUseCase) Timeout() time.Duration {
	return uc.jwtCfg.Timeout
}

// Logout revoca el jti. Un token renovado nunca vence después de now+Timeout, así que ese es el TTL.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims, ip string) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.revoker.Revoke(ctx, claims.ID, uc.jwtCfg.Timeout); err != nil {
		return fmt.Errorf("auth: revocar sesión: %w", err)
	}
	if uc.audit != nil {
		s := claims.Session()
		uc.audit.Record(ctx, usecase.Actor{UserID: s.UserID, UserName: s.UserName, Role: s.Role, IP: ip}, entity.AccionLogout, "sesion", s.UserID, "")
	}
	return nil
}

// Me devuelve el usuario en sesión y sus módulos visibles.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	mods, err := uc.modules.VisibleModules(ctx, user.Modulo)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		User:    *usecase.ToUsuarioResponse(user),
		Modulos: usecase.ToModuloInfoDTOs(mods),
	}, nil
}

// ChangePassword cambia la contraseña del usuario en sesión tras verificar la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor usecase.Actor, in dto.ChangePasswordRequest) error {
	user, err := uc.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Actual)) != nil {
		return domain.ErrInvalidCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	if uc.audit != nil {
		uc.audit.Record(ctx, actor, entity.AccionActualizar, "usuario", user.ID, "cambio de contraseña")
	}
	return nil
}
