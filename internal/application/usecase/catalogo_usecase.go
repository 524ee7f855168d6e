package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// CatalogoUseCase catálogos de solo lectura para los formularios.
type CatalogoUseCase struct {
	municipios repository.MunicipioRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(municipios repository.MunicipioRepository) *CatalogoUseCase {
	return &CatalogoUseCase{municipios: municipios}
}

// Municipios lista municipios, opcionalmente de un departamento.
func (uc *CatalogoUseCase) Municipios(ctx context.Context, departamento string) ([]dto.MunicipioResponse, error) {
	list, err := uc.municipios.List(ctx, strings.TrimSpace(departamento))
	if err != nil {
		return nil, err
	}
	out := make([]dto.MunicipioResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MunicipioResponse{Codigo: m.Codigo, Nombre: m.Nombre, Departamento: m.Departamento})
	}
	return out, nil
}
