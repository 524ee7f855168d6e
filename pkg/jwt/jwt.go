package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrExpired se devuelve cuando la sesión superó el tiempo de inactividad.
var ErrExpired = errors.New("jwt: sesión expirada")

// Claims incluye los claims estándar JWT más los datos de sesión del usuario.
// El rol viaja en el token para que el middleware pueda resolver módulos sin releer al usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"user_role"`
}

// Session datos de sesión que se firman en el token.
type Session struct {
	UserID   string
	UserName string
	Role     string
}

// Generate firma un token para la sesión con expiración now+ttl y un jti nuevo.
func Generate(secret, issuer string, s Session, ttl time.Duration) (string, *Claims, error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   s.UserID,
		UserName: s.UserName,
		Role:     s.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Renew vuelve a firmar la sesión de c con expiración now+ttl conservando el jti,
// así revocar el jti invalida también los tokens renovados.
func Renew(secret string, c *Claims, ttl time.Duration) (string, *Claims, error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	renewed := *c
	renewed.IssuedAt = jwt.NewNumericDate(now)
	renewed.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &renewed).SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, &renewed, nil
}

// Parse valida firma y expiración y devuelve los claims.
// Un token vencido devuelve ErrExpired para que el cliente redirija al login.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Session devuelve los datos de sesión contenidos en los claims.
func (c *Claims) Session() Session {
	return Session{UserID: c.UserID, UserName: c.UserName, Role: c.Role}
}
