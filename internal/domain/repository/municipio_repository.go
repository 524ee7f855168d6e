package repository

import (
	"context"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// MunicipioRepository catálogo DANE de municipios (solo lectura).
type MunicipioRepository interface {
	List(ctx context.Context, departamento string) ([]*entity.Municipio, error)
}
