package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// VentaFilter filtros del listado de ventas. Fechas nil = sin límite.
type VentaFilter struct {
	Search         string // cédula, nombre o número de servicio
	Municipio      string
	Tecnologia     string
	VendedorCedula string
	Desde          *time.Time
	Hasta          *time.Time
	Limit          int
	Offset         int
}

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(ctx context.Context, v *entity.Venta) error
	GetByID(ctx context.Context, id string) (*entity.Venta, error)
	// GetLatestByCedula devuelve la venta más reciente del cliente o nil.
	GetLatestByCedula(ctx context.Context, cedula string) (*entity.Venta, error)
	ExistsByCedula(ctx context.Context, cedula string) (bool, error)
	Update(ctx context.Context, v *entity.Venta) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f VentaFilter) ([]*entity.Venta, int, error)
	ListBetween(ctx context.Context, desde, hasta time.Time) ([]*entity.Venta, error)
}
