package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

func TestAprovisionamientoCreate(t *testing.T) {
	repo := newFakeAprovRepo()
	uc := NewAprovisionamientoUseCase(repo, newFakeVentaRepo(ventaConEmail()), newFakeAgendamientoRepo(), nil)

	out, err := uc.Create(context.Background(), Actor{}, dto.CreateAprovisionamientoRequest{
		CedulaCliente:   "1098765432",
		TipoRouterONU:   "ONU Huawei",
		MacSerialRouter: "aa:bb:cc:dd:ee:ff",
		MetrosCable:     decimal.RequireFromString("120.456"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AprovPendiente, out.EstadoAprovisionamiento)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", out.MacSerialRouter)
	assert.True(t, decimal.RequireFromString("120.46").Equal(out.MetrosCable))

	_, err = uc.Create(context.Background(), Actor{}, dto.CreateAprovisionamientoRequest{CedulaCliente: "999999"})
	assert.ErrorIs(t, err, domain.ErrVentaNotFound)

	_, err = uc.Create(context.Background(), Actor{}, dto.CreateAprovisionamientoRequest{
		CedulaCliente: "1098765432", MetrosCable: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAprovisionamientoClienteResumen(t *testing.T) {
	now := time.Now()
	vieja := &entity.Agendamiento{ID: "a1", CedulaCliente: "1098765432", EstadoVisita: entity.VisitaCancelada, CreatedAt: now.Add(-time.Hour)}
	nueva := &entity.Agendamiento{ID: "a2", CedulaCliente: "1098765432", EstadoVisita: entity.VisitaProgramada, CreatedAt: now}
	uc := NewAprovisionamientoUseCase(newFakeAprovRepo(), newFakeVentaRepo(ventaConEmail()), newFakeAgendamientoRepo(vieja, nueva), nil)

	out, err := uc.ClienteResumen(context.Background(), " 1098765432 ")
	require.NoError(t, err)
	assert.Equal(t, "v1", out.Venta.ID)
	require.NotNil(t, out.Agendamiento)
	assert.Equal(t, "a2", out.Agendamiento.ID)
	assert.Nil(t, out.Aprovisionamiento)

	_, err = uc.ClienteResumen(context.Background(), "123456")
	assert.ErrorIs(t, err, domain.ErrVentaNotFound)
}

func TestAuditoriaRecord_FalloNoSePropaga(t *testing.T) {
	repo := &fakeAuditoriaRepo{fail: true}
	uc := NewAuditoriaUseCase(repo, nil)

	assert.NotPanics(t, func() {
		uc.Record(context.Background(), Actor{UserID: "u1"}, entity.AccionCrear, "venta", "v1", "x")
	})

	repo.fail = false
	uc.Record(context.Background(), Actor{UserID: "u1", UserName: "Ana", IP: "10.0.0.1"}, entity.AccionCrear, "venta", "v1", "detalle")
	out, err := uc.List(context.Background(), "", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ana", out.Items[0].UsuarioNombre)
	assert.Equal(t, defaultLimit, out.Page.Limit)
}
