package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/panel"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

type fakeDashboardRepo struct {
	failMetros bool
	desde      time.Time
	hasta      time.Time
	rows       []repository.PanelRow
}

func (r *fakeDashboardRepo) CountVentas(_ context.Context, desde, hasta time.Time) (int, error) {
	r.desde, r.hasta = desde, hasta
	return 7, nil
}

func (r *fakeDashboardRepo) VentasPorDia(_ context.Context, desde, _ time.Time) ([]repository.SerieDia, error) {
	return []repository.SerieDia{{Fecha: desde.AddDate(0, 0, 1), Total: 4}, {Fecha: desde.AddDate(0, 0, 2), Total: 3}}, nil
}

func (r *fakeDashboardRepo) VentasAgrupadas(_ context.Context, g repository.VentaGroup, _, _ time.Time) ([]repository.Conteo, error) {
	if g == repository.GroupTecnologia {
		return []repository.Conteo{{Etiqueta: entity.TecnologiaFibra, Total: 5}, {Etiqueta: entity.TecnologiaRadio, Total: 2}}, nil
	}
	return []repository.Conteo{{Etiqueta: string(g), Total: 7}}, nil
}

func (r *fakeDashboardRepo) AgendamientosPorEstado(context.Context, time.Time, time.Time) ([]repository.Conteo, error) {
	return []repository.Conteo{{Etiqueta: entity.VisitaProgramada, Total: 3}}, nil
}

func (r *fakeDashboardRepo) AprovisionamientosPorEstado(context.Context, time.Time, time.Time) ([]repository.Conteo, error) {
	return []repository.Conteo{{Etiqueta: "", Total: 1}}, nil
}

func (r *fakeDashboardRepo) MetrosCable(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	if r.failMetros {
		return decimal.Zero, errors.New("timeout")
	}
	return decimal.RequireFromString("350.255"), nil
}

func (r *fakeDashboardRepo) PanelRows(context.Context, repository.PanelFilter) ([]repository.PanelRow, error) {
	return r.rows, nil
}

func TestGetDashboard_RangoExplicito(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background(), dto.DashboardQuery{Desde: "2026-10-01", Hasta: "2026-10-05"})
	require.NoError(t, err)
	assert.Equal(t, 7, out.TotalVentas)
	assert.Equal(t, "Octubre 2026", out.Periodo)
	require.Len(t, out.VentasPorDia, 5, "un punto por día, incluidos los días sin ventas")
	assert.Equal(t, dto.SerieDiaDTO{Fecha: "2026-10-02", Total: 4}, out.VentasPorDia[1])
	assert.Equal(t, 0, out.VentasPorDia[4].Total)
	assert.Len(t, out.VentasPorTecnologia, 2)
	assert.Equal(t, "vendedor", out.VentasPorVendedor[0].Etiqueta)
	assert.Equal(t, "Sin dato", out.AprovisionamientosPorEstado[0].Etiqueta)
	assert.True(t, decimal.RequireFromString("350.26").Equal(out.MetrosCableInstalados))
	assert.Equal(t, 23, repo.hasta.Hour(), "hasta incluye el día completo")
}

func TestGetDashboard_PorDefectoMesEnCurso(t *testing.T) {
	repo := &fakeDashboardRepo{}
	out, err := NewDashboardUseCase(repo).GetDashboard(context.Background(), dto.DashboardQuery{})
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout), out.Desde)
	assert.Equal(t, now.Format(dateLayout), out.Hasta)
	assert.Equal(t, monthLabel(now), out.Periodo)
}

func TestGetDashboard_DesdeMayorQueHasta(t *testing.T) {
	_, err := NewDashboardUseCase(&fakeDashboardRepo{}).GetDashboard(context.Background(), dto.DashboardQuery{Desde: "2026-10-10", Hasta: "2026-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestGetDashboard_RangoMayorAUnAnio(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewDashboardUseCase(repo)

	_, err := uc.GetDashboard(context.Background(), dto.DashboardQuery{Desde: "0001-01-01", Hasta: "2026-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	_, err = uc.GetDashboard(context.Background(), dto.DashboardQuery{Desde: "0001-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange, "sin hasta se toma hoy")

	out, err := uc.GetDashboard(context.Background(), dto.DashboardQuery{Desde: "2025-10-01", Hasta: "2026-10-01"})
	require.NoError(t, err)
	assert.Len(t, out.VentasPorDia, 366)
}

func TestGetDashboard_ErrorDeUnaConsulta(t *testing.T) {
	_, err := NewDashboardUseCase(&fakeDashboardRepo{failMetros: true}).GetDashboard(context.Background(), dto.DashboardQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metros de cable")
}

func TestPeriodLabel_VariosMeses(t *testing.T) {
	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	h := time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "01/09/2026 - 15/10/2026", periodLabel(d, h))
}

func day(s string) time.Time {
	t, _ := time.ParseInLocation(dateLayout, s, time.Local)
	return t
}

func panelRows() []repository.PanelRow {
	return []repository.PanelRow{
		{VentaID: "instalada", FechaVenta: day("2026-09-01"), EstadoVisita: entity.VisitaCompletada, EstadoAprov: entity.AprovCompletado},
		{VentaID: "sin-agenda-nueva", FechaVenta: day("2026-10-05")},
		{VentaID: "sin-agenda-vieja", FechaVenta: day("2026-10-01")},
		{VentaID: "cancelada", FechaVenta: day("2026-09-10"), EstadoVisita: entity.VisitaCancelada},
		{VentaID: "reprogramada", FechaVenta: day("2026-09-20"), EstadoVisita: entity.VisitaReprogramada},
		{VentaID: "programada", FechaVenta: day("2026-09-21"), EstadoVisita: entity.VisitaProgramada},
		{VentaID: "completada", FechaVenta: day("2026-09-22"), EstadoVisita: entity.VisitaCompletada, EstadoAprov: entity.AprovEnProceso},
	}
}

func TestGetPanel_OrdenPorPrioridadYFecha(t *testing.T) {
	uc := NewPanelUseCase(&fakeDashboardRepo{rows: panelRows()})

	out, err := uc.GetPanel(context.Background(), dto.PanelQuery{})
	require.NoError(t, err)

	ids := make([]string, 0, len(out.Items))
	for _, it := range out.Items {
		ids = append(ids, it.VentaID)
	}
	assert.Equal(t, []string{
		"sin-agenda-vieja", "sin-agenda-nueva", "reprogramada", "programada", "completada", "instalada", "cancelada",
	}, ids)
	assert.Equal(t, 1, out.Items[0].Prioridad)
	assert.Equal(t, panel.EstadoCancelado, out.Items[6].EstadoGlobal)

	require.Len(t, out.Resumen, 6)
	assert.Equal(t, dto.ConteoDTO{Etiqueta: panel.EstadoSinAgendar, Total: 2}, out.Resumen[0])
	assert.Equal(t, dto.ConteoDTO{Etiqueta: panel.EstadoInstalado, Total: 1}, out.Resumen[4])
}

func TestGetPanel_FiltroPorEstado(t *testing.T) {
	uc := NewPanelUseCase(&fakeDashboardRepo{rows: panelRows()})

	out, err := uc.GetPanel(context.Background(), dto.PanelQuery{Estado: panel.EstadoSinAgendar})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 1, out.Resumen[5].Total, "el resumen cuenta todas las ventas")

	_, err = uc.GetPanel(context.Background(), dto.PanelQuery{Estado: "Perdido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
