package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/ventas-instalaciones/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testSession = pkgjwt.Session{
	UserID:   "00000000-0000-0000-0000-000000000001",
	UserName: "Laura Gómez",
	Role:     "Ventas",
}

func TestGenerateAndParse_ConservaSesion(t *testing.T) {
	tok, claims, err := pkgjwt.Generate(testSecret, "test", testSession, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.NotEmpty(t, claims.ID, "cada token lleva jti")

	parsed, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSession, parsed.Session())
	assert.Equal(t, claims.ID, parsed.ID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), parsed.ExpiresAt.Time, 5*time.Second)
}

func TestParse_TokenExpirado_RetornaErrExpired(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "test", testSession, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "test", testSession, time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "test", testSession, time.Minute)
	assert.Error(t, err)
}

func TestRenew_ConservaJTIYExtiendeExpiracion(t *testing.T) {
	_, claims, err := pkgjwt.Generate(testSecret, "test", testSession, time.Minute)
	require.NoError(t, err)

	tok, renewed, err := pkgjwt.Renew(testSecret, claims, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, renewed.ID)
	assert.True(t, renewed.ExpiresAt.After(claims.ExpiresAt.Time))

	parsed, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, testSession, parsed.Session())
}
