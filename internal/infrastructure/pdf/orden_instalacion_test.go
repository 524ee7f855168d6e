package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

func testVenta() *entity.Venta {
	return &entity.Venta{
		ID: "v1", Cedula: "71234567", Nombre: "Carlos Ruiz", Telefono1: "3001234567",
		Municipio: "Piedecuesta", Vereda: "Guatiguará", Coordenadas: "7.0651, -73.0498",
		Tecnologia: entity.TecnologiaRadio, Plan: "Rural 20", Fecha: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		VendedorCedula: "1098765432",
	}
}

func TestGenerateOrden_CompletaGeneraPDF(t *testing.T) {
	g := NewMarotoOrdenGenerator("Conecta ISP")
	out, err := g.GenerateOrden(usecase.OrdenData{
		Venta: testVenta(),
		Agendamiento: &entity.Agendamiento{
			FechaVisita: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), FranjaVisita: entity.FranjaAM,
			TecnicoAsignado: "Pedro Pérez", EstadoVisita: entity.VisitaProgramada,
		},
		Aprovisionamiento: &entity.Aprovisionamiento{
			TipoRadio: "LiteBeam M5", MacSerialRadio: "AA:BB:CC:00:11:22", TipoRouterONU: "TP-Link C6",
			MacSerialRouter: "AA:BB:CC:33:44:55", MetrosCable: decimal.RequireFromString("35.5"),
		},
		GeneradoPor: "Laura Gómez",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateOrden_SinVisitaNiEquipos(t *testing.T) {
	out, err := NewMarotoOrdenGenerator("Conecta ISP").GenerateOrden(usecase.OrdenData{Venta: testVenta()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateOrden_SinVenta(t *testing.T) {
	_, err := NewMarotoOrdenGenerator("Conecta ISP").GenerateOrden(usecase.OrdenData{})
	assert.Error(t, err)
}

func TestMapsURL_QuitaEspacios(t *testing.T) {
	assert.Equal(t, "https://maps.google.com/?q=7.0651,-73.0498", mapsURL("7.0651, -73.0498"))
}
