package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// AgendamientoFilter filtros del listado de visitas.
type AgendamientoFilter struct {
	Search  string // cédula del cliente
	Estado  string
	Tecnico string
	Desde   *time.Time
	Hasta   *time.Time
	Limit   int
	Offset  int
}

// AgendamientoRepository define el puerto de persistencia para Agendamiento (DIP).
type AgendamientoRepository interface {
	Create(ctx context.Context, a *entity.Agendamiento) error
	GetByID(ctx context.Context, id string) (*entity.Agendamiento, error)
	GetLatestByCedula(ctx context.Context, cedula string) (*entity.Agendamiento, error)
	Update(ctx context.Context, a *entity.Agendamiento) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f AgendamientoFilter) ([]*entity.Agendamiento, int, error)
}
