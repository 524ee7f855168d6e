package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// DocumentosUseCase genera la orden de instalación de una venta.
type DocumentosUseCase struct {
	ventas        repository.VentaRepository
	agendamientos repository.AgendamientoRepository
	aprovs        repository.AprovisionamientoRepository
	generator     OrdenGenerator
}

// NewDocumentosUseCase construye el caso de uso.
func NewDocumentosUseCase(ventas repository.VentaRepository, agendamientos repository.AgendamientoRepository, aprovs repository.AprovisionamientoRepository, generator OrdenGenerator) *DocumentosUseCase {
	return &DocumentosUseCase{ventas: ventas, agendamientos: agendamientos, aprovs: aprovs, generator: generator}
}

// OrdenInstalacion devuelve el PDF y un nombre de archivo sugerido.
func (uc *DocumentosUseCase) OrdenInstalacion(ctx context.Context, actor Actor, ventaID string) ([]byte, string, error) {
	venta, err := uc.ventas.GetByID(ctx, ventaID)
	if err != nil {
		return nil, "", err
	}
	if venta == nil {
		return nil, "", domain.ErrNotFound
	}
	visita, err := uc.agendamientos.GetLatestByCedula(ctx, venta.Cedula)
	if err != nil {
		return nil, "", err
	}
	aprov, err := uc.aprovs.GetLatestByCedula(ctx, venta.Cedula)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateOrden(OrdenData{
		Venta:             venta,
		Agendamiento:      visita,
		Aprovisionamiento: aprov,
		GeneradoPor:       actor.UserName,
	})
	if err != nil {
		return nil, "", fmt.Errorf("documentos: orden de instalación %s: %w", ventaID, err)
	}
	return pdf, fmt.Sprintf("orden-instalacion-%s.pdf", venta.Cedula), nil
}
