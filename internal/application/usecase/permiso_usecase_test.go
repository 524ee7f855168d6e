package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

func TestPermisoCreate_NombreUnicoSinMayusculas(t *testing.T) {
	repo := newFakePermisoRepo(&entity.Permiso{ID: "p1", Nombre: "Ventas"})
	uc := NewPermisoUseCase(repo, nil)

	_, err := uc.Create(context.Background(), Actor{}, dto.CreatePermisoRequest{Nombre: " ventas "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Create(context.Background(), Actor{}, dto.CreatePermisoRequest{Nombre: "Agendamiento", Descripcion: "Visitas"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.FechaCreacion.IsZero())
}

func TestPermisoUpdate_RefrescaFechaModificacion(t *testing.T) {
	p := &entity.Permiso{ID: "p1", Nombre: "Ventas"}
	repo := newFakePermisoRepo(p, &entity.Permiso{ID: "p2", Nombre: "Dashboard"})
	uc := NewPermisoUseCase(repo, nil)

	nombre := "Dashboard"
	_, err := uc.Update(context.Background(), Actor{}, "p1", dto.UpdatePermisoRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	desc := "Registro de ventas"
	out, err := uc.Update(context.Background(), Actor{}, "p1", dto.UpdatePermisoRequest{Descripcion: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Registro de ventas", out.Descripcion)
	assert.False(t, out.FechaModificacion.IsZero())
}

func TestPermisoDelete_Inexistente(t *testing.T) {
	uc := NewPermisoUseCase(newFakePermisoRepo(), nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), Actor{}, "nope"), domain.ErrNotFound)
}
