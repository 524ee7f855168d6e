package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/panel"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// PanelUseCase consolida cada venta con su última visita y aprovisionamiento.
type PanelUseCase struct {
	repo repository.DashboardRepository
}

// NewPanelUseCase construye el caso de uso.
func NewPanelUseCase(repo repository.DashboardRepository) *PanelUseCase {
	return &PanelUseCase{repo: repo}
}

// GetPanel devuelve las ventas ordenadas por prioridad y luego por fecha de venta ascendente.
// El resumen cuenta todas las filas antes de aplicar el filtro por estado.
func (uc *PanelUseCase) GetPanel(ctx context.Context, q dto.PanelQuery) (*dto.PanelDTO, error) {
	estado := strings.TrimSpace(q.Estado)
	if estado != "" && !panel.IsValid(estado) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, estado)
	}
	desde, hasta, err := usecase.ParseRange(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.PanelRows(ctx, repository.PanelFilter{
		Search: strings.TrimSpace(q.Search),
		Desde:  desde,
		Hasta:  hasta,
	})
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}

	counts := make(map[string]int, 6)
	items := make([]dto.PanelItemDTO, 0, len(rows))
	for _, r := range rows {
		e := panel.Resolve(r.EstadoVisita, r.EstadoAprov)
		counts[e.Nombre]++
		if estado != "" && e.Nombre != estado {
			continue
		}
		items = append(items, toPanelItem(r, e))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Prioridad != items[j].Prioridad {
			return items[i].Prioridad < items[j].Prioridad
		}
		return items[i].FechaVenta < items[j].FechaVenta
	})

	resumen := make([]dto.ConteoDTO, 0, 6)
	for _, e := range panel.Estados() {
		resumen = append(resumen, dto.ConteoDTO{Etiqueta: e.Nombre, Total: counts[e.Nombre]})
	}
	return &dto.PanelDTO{Items: items, Resumen: resumen}, nil
}

func toPanelItem(r repository.PanelRow, e panel.Estado) dto.PanelItemDTO {
	item := dto.PanelItemDTO{
		VentaID:             r.VentaID,
		Cedula:              r.Cedula,
		Nombre:              r.Nombre,
		Telefono1:           r.Telefono1,
		Municipio:           r.Municipio,
		Tecnologia:          r.Tecnologia,
		Plan:                r.Plan,
		FechaVenta:          r.FechaVenta.Format(dateLayout),
		AgendamientoID:      r.AgendamientoID,
		FranjaVisita:        r.FranjaVisita,
		TecnicoAsignado:     r.TecnicoAsignado,
		EstadoVisita:        r.EstadoVisita,
		AprovisionamientoID: r.AprovisionamientoID,
		EstadoAprov:         r.EstadoAprov,
		EstadoGlobal:        e.Nombre,
		Prioridad:           e.Prioridad,
	}
	if r.FechaVisita != nil {
		item.FechaVisita = r.FechaVisita.Format(dateLayout)
	}
	return item
}
