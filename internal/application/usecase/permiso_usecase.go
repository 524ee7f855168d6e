package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// PermisoUseCase CRUD del catálogo de permisos.
type PermisoUseCase struct {
	repo  repository.PermisoRepository
	audit Auditor
}

// NewPermisoUseCase construye el caso de uso.
func NewPermisoUseCase(repo repository.PermisoRepository, audit Auditor) *PermisoUseCase {
	return &PermisoUseCase{repo: repo, audit: auditorOrNop(audit)}
}

// Create registra un permiso; el nombre es único sin distinguir mayúsculas.
func (uc *PermisoUseCase) Create(ctx context.Context, actor Actor, in dto.CreatePermisoRequest) (*dto.PermisoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Permiso{
		ID:                uuid.New().String(),
		Nombre:            nombre,
		Descripcion:       strings.TrimSpace(in.Descripcion),
		FechaCreacion:     now,
		FechaModificacion: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionCrear, "permiso", p.ID, p.Nombre)
	return toPermisoResponse(p), nil
}

// GetByID obtiene un permiso.
func (uc *PermisoUseCase) GetByID(ctx context.Context, id string) (*dto.PermisoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPermisoResponse(p), nil
}

// Update modifica nombre o descripción y refresca fecha_modificacion.
func (uc *PermisoUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdatePermisoRequest) (*dto.PermisoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(nombre, p.Nombre) {
			other, err := uc.repo.GetByNombre(ctx, nombre)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != p.ID {
				return nil, domain.ErrDuplicate
			}
		}
		p.Nombre = nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	p.FechaModificacion = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionActualizar, "permiso", p.ID, p.Nombre)
	return toPermisoResponse(p), nil
}

// Delete elimina el permiso y sus asignaciones.
func (uc *PermisoUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("permiso: eliminar %s: %w", id, err)
	}
	uc.audit.Record(ctx, actor, entity.AccionEliminar, "permiso", p.ID, p.Nombre)
	return nil
}

// List lista permisos con búsqueda por nombre.
func (uc *PermisoUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.PermisoListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.ListFilter{Search: strings.TrimSpace(search), Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.PermisoListResponse{
		Items: make([]dto.PermisoResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toPermisoResponse(p))
	}
	return out, nil
}

func toPermisoResponse(p *entity.Permiso) *dto.PermisoResponse {
	return &dto.PermisoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		FechaCreacion:     p.FechaCreacion,
		FechaModificacion: p.FechaModificacion,
	}
}
