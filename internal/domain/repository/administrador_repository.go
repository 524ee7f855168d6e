package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// ListFilter búsqueda libre con paginación.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// AdministradorRepository define el puerto de persistencia para usuarios (DIP).
// Los Get* devuelven (nil, nil) cuando no existe el registro.
type AdministradorRepository interface {
	Create(ctx context.Context, a *entity.Administrador) error
	GetByID(ctx context.Context, id string) (*entity.Administrador, error)
	GetByEmail(ctx context.Context, email string) (*entity.Administrador, error)
	GetByCedula(ctx context.Context, cedula string) (*entity.Administrador, error)
	Update(ctx context.Context, a *entity.Administrador) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Administrador, int, error)
}
