// Package analytics contiene los casos de uso de lectura agregada: el dashboard
// de ventas e instalaciones y el panel de estados por prioridad.
package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// DashboardUseCase genera los datos de las gráficas del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetDashboard construye el DashboardDTO del rango [desde, hasta].
// Sin rango usa el mes en curso hasta hoy; desde > hasta devuelve ErrInvalidDateRange.
//
// Las nueve consultas corren en paralelo y se espera a todas; el primer error encontrado
// (en el orden del DTO) se devuelve.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, q dto.DashboardQuery) (*dto.DashboardDTO, error) {
	desde, hasta, err := usecase.ResolveRange(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	start := desde
	end := hasta.Add(24*time.Hour - time.Nanosecond)

	var (
		wg        sync.WaitGroup
		total     int
		porDia    []repository.SerieDia
		grupos    = make(map[repository.VentaGroup][]repository.Conteo, 4)
		gruposMu  sync.Mutex
		agenda    []repository.Conteo
		aprov     []repository.Conteo
		metros    decimal.Decimal
		errs      = make([]error, 9)
		groupKeys = []repository.VentaGroup{
			repository.GroupTecnologia,
			repository.GroupPlan,
			repository.GroupMunicipio,
			repository.GroupVendedor,
		}
	)

	run := func(i int, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}

	run(0, func() (err error) {
		total, err = uc.repo.CountVentas(ctx, start, end)
		return wrap("total de ventas", err)
	})
	run(1, func() (err error) {
		porDia, err = uc.repo.VentasPorDia(ctx, start, end)
		return wrap("ventas por día", err)
	})
	for i, g := range groupKeys {
		run(2+i, func() error {
			list, err := uc.repo.VentasAgrupadas(ctx, g, start, end)
			if err != nil {
				return wrap("ventas por "+string(g), err)
			}
			gruposMu.Lock()
			grupos[g] = list
			gruposMu.Unlock()
			return nil
		})
	}
	run(6, func() (err error) {
		agenda, err = uc.repo.AgendamientosPorEstado(ctx, start, end)
		return wrap("agendamientos por estado", err)
	})
	run(7, func() (err error) {
		aprov, err = uc.repo.AprovisionamientosPorEstado(ctx, start, end)
		return wrap("aprovisionamientos por estado", err)
	})
	run(8, func() (err error) {
		metros, err = uc.repo.MetrosCable(ctx, start, end)
		return wrap("metros de cable", err)
	})
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardDTO{
		Desde:                       desde.Format(dateLayout),
		Hasta:                       hasta.Format(dateLayout),
		TotalVentas:                 total,
		VentasPorDia:                fillDays(porDia, desde, hasta),
		VentasPorTecnologia:         toConteos(grupos[repository.GroupTecnologia]),
		VentasPorPlan:               toConteos(grupos[repository.GroupPlan]),
		VentasPorMunicipio:          toConteos(grupos[repository.GroupMunicipio]),
		VentasPorVendedor:           toConteos(grupos[repository.GroupVendedor]),
		AgendamientosPorEstado:      toConteos(agenda),
		AprovisionamientosPorEstado: toConteos(aprov),
		MetrosCableInstalados:       metros.Round(2),
		Periodo:                     periodLabel(desde, hasta),
	}, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard: %s: %w", what, err)
}

// fillDays completa con cero los días sin ventas para que la serie sea continua.
func fillDays(serie []repository.SerieDia, desde, hasta time.Time) []dto.SerieDiaDTO {
	byDay := make(map[string]int, len(serie))
	for _, s := range serie {
		byDay[s.Fecha.Format(dateLayout)] += s.Total
	}
	out := make([]dto.SerieDiaDTO, 0, len(serie))
	for d := desde; !d.After(hasta); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		out = append(out, dto.SerieDiaDTO{Fecha: key, Total: byDay[key]})
	}
	return out
}

func toConteos(list []repository.Conteo) []dto.ConteoDTO {
	out := make([]dto.ConteoDTO, 0, len(list))
	for _, c := range list {
		etiqueta := c.Etiqueta
		if etiqueta == "" {
			etiqueta = "Sin dato"
		}
		out = append(out, dto.ConteoDTO{Etiqueta: etiqueta, Total: c.Total})
	}
	return out
}

// periodLabel etiqueta del período: "Octubre 2026" si es un solo mes, si no "01/09/2026 - 15/10/2026".
func periodLabel(desde, hasta time.Time) string {
	if desde.Year() == hasta.Year() && desde.Month() == hasta.Month() {
		return monthLabel(desde)
	}
	return fmt.Sprintf("%s - %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006"))
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
