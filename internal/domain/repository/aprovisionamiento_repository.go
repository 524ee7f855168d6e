package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// AprovisionamientoFilter filtros del listado de aprovisionamientos.
type AprovisionamientoFilter struct {
	Search string // cédula, MAC/serial o IP
	Estado string
	Limit  int
	Offset int
}

// AprovisionamientoRepository define el puerto de persistencia para Aprovisionamiento (DIP).
type AprovisionamientoRepository interface {
	Create(ctx context.Context, a *entity.Aprovisionamiento) error
	GetByID(ctx context.Context, id string) (*entity.Aprovisionamiento, error)
	GetLatestByCedula(ctx context.Context, cedula string) (*entity.Aprovisionamiento, error)
	Update(ctx context.Context, a *entity.Aprovisionamiento) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f AprovisionamientoFilter) ([]*entity.Aprovisionamiento, int, error)
}
