package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

func TestWriteVentas_Windows1252ConPuntoYComa(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVExporter().WriteVentas(&buf, []*entity.Venta{{
		ID: "v1", Fecha: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Cedula: "71234567",
		Nombre: "José Peña", Telefono1: "3001234567", Municipio: "Bucaramanga",
		Coordenadas: "7.1,-73.1", Tecnologia: entity.TecnologiaFibra, Plan: "Hogar; 300", Notas: "casa 🏠",
	}})
	require.NoError(t, err)

	raw := buf.Bytes()
	assert.True(t, bytes.Contains(raw, []byte{'P', 'e', 0xF1, 'a'}), "ñ se codifica como 0xF1")

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(decoded), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Fecha;Cédula;Nombre"))
	assert.Contains(t, lines[1], "03/10/2026;71234567;José Peña")
	assert.Contains(t, lines[1], `"Hogar; 300"`)
	assert.Contains(t, lines[1], "casa ?")
}

func TestWriteVentas_SinVentasSoloEncabezado(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().WriteVentas(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\r\n"))
}
