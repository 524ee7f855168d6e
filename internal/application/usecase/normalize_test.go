package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "aprovisionamiento", NormalizeKey("  Aprovisionamiento "))
	assert.Equal(t, "gestion_de_usuarios", NormalizeKey("Gestión de   Usuarios"))
	assert.Equal(t, "auditoria", NormalizeKey("AUDITORÍA"))
	assert.Equal(t, "exportar_ventas", NormalizeKey("Exportar ventas"))
}

func TestNormalizePage(t *testing.T) {
	l, o := normalizePage(0, -5)
	assert.Equal(t, defaultLimit, l)
	assert.Equal(t, 0, o)
	l, _ = normalizePage(1000, 0)
	assert.Equal(t, maxLimit, l)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, "2026-10-19", formatDate(*d))

	_, err = parseDate("19/10/2026")
	assert.Error(t, err)
}
