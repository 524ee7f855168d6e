package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// AprovisionamientoUseCase registro de equipos y direccionamiento de cada instalación.
type AprovisionamientoUseCase struct {
	repo          repository.AprovisionamientoRepository
	ventas        repository.VentaRepository
	agendamientos repository.AgendamientoRepository
	audit         Auditor
}

// NewAprovisionamientoUseCase construye el caso de uso.
func NewAprovisionamientoUseCase(repo repository.AprovisionamientoRepository, ventas repository.VentaRepository, agendamientos repository.AgendamientoRepository, audit Auditor) *AprovisionamientoUseCase {
	return &AprovisionamientoUseCase{repo: repo, ventas: ventas, agendamientos: agendamientos, audit: auditorOrNop(audit)}
}

// Create registra el aprovisionamiento de un cliente con venta.
func (uc *AprovisionamientoUseCase) Create(ctx context.Context, actor Actor, in dto.CreateAprovisionamientoRequest) (*dto.AprovisionamientoResponse, error) {
	cedula := strings.TrimSpace(in.CedulaCliente)
	ok, err := uc.ventas.ExistsByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrVentaNotFound
	}
	if in.MetrosCable.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	estado := in.EstadoAprovisionamiento
	if estado == "" {
		estado = entity.AprovPendiente
	}
	now := time.Now()
	a := &entity.Aprovisionamiento{
		ID:                      uuid.New().String(),
		CedulaCliente:           cedula,
		TipoRadio:               strings.TrimSpace(in.TipoRadio),
		MacSerialRadio:          strings.ToUpper(strings.TrimSpace(in.MacSerialRadio)),
		TipoRouterONU:           strings.TrimSpace(in.TipoRouterONU),
		MacSerialRouter:         strings.ToUpper(strings.TrimSpace(in.MacSerialRouter)),
		IPNavegacion:            strings.TrimSpace(in.IPNavegacion),
		IPGestion:               strings.TrimSpace(in.IPGestion),
		MetrosCable:             in.MetrosCable.Round(2),
		TipoCable:               strings.TrimSpace(in.TipoCable),
		Notas:                   strings.TrimSpace(in.Notas),
		EstadoAprovisionamiento: estado,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionCrear, "aprovisionamiento", a.ID, a.CedulaCliente)
	return ToAprovisionamientoResponse(a), nil
}

// GetByID obtiene un aprovisionamiento.
func (uc *AprovisionamientoUseCase) GetByID(ctx context.Context, id string) (*dto.AprovisionamientoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return ToAprovisionamientoResponse(a), nil
}

// Update aplica los campos presentes.
func (uc *AprovisionamientoUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateAprovisionamientoRequest) (*dto.AprovisionamientoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	setTrimmed(&a.TipoRadio, in.TipoRadio)
	setUpper(&a.MacSerialRadio, in.MacSerialRadio)
	setTrimmed(&a.TipoRouterONU, in.TipoRouterONU)
	setUpper(&a.MacSerialRouter, in.MacSerialRouter)
	setTrimmed(&a.IPNavegacion, in.IPNavegacion)
	setTrimmed(&a.IPGestion, in.IPGestion)
	if in.MetrosCable != nil {
		if in.MetrosCable.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		a.MetrosCable = in.MetrosCable.Round(2)
	}
	setTrimmed(&a.TipoCable, in.TipoCable)
	setTrimmed(&a.Notas, in.Notas)
	if in.EstadoAprovisionamiento != nil {
		a.EstadoAprovisionamiento = *in.EstadoAprovisionamiento
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionActualizar, "aprovisionamiento", a.ID, a.EstadoAprovisionamiento)
	return ToAprovisionamientoResponse(a), nil
}

// Delete elimina un aprovisionamiento.
func (uc *AprovisionamientoUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actor, entity.AccionEliminar, "aprovisionamiento", a.ID, a.CedulaCliente)
	return nil
}

// List lista aprovisionamientos.
func (uc *AprovisionamientoUseCase) List(ctx context.Context, search, estado string, limit, offset int) (*dto.AprovisionamientoListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.AprovisionamientoFilter{
		Search: strings.TrimSpace(search),
		Estado: strings.TrimSpace(estado),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.AprovisionamientoListResponse{
		Items: make([]dto.AprovisionamientoResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, a := range list {
		out.Items = append(out.Items, *ToAprovisionamientoResponse(a))
	}
	return out, nil
}

// ClienteResumen datos de la venta y la última visita del cliente para precargar el formulario.
func (uc *AprovisionamientoUseCase) ClienteResumen(ctx context.Context, cedula string) (*dto.ClienteResumenResponse, error) {
	cedula = strings.TrimSpace(cedula)
	venta, err := uc.ventas.GetLatestByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrVentaNotFound
	}
	out := &dto.ClienteResumenResponse{Venta: *ToVentaResponse(venta)}
	visita, err := uc.agendamientos.GetLatestByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if visita != nil {
		out.Agendamiento = ToAgendamientoResponse(visita)
	}
	aprov, err := uc.repo.GetLatestByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if aprov != nil {
		out.Aprovisionamiento = ToAprovisionamientoResponse(aprov)
	}
	return out, nil
}

func setUpper(dst *string, src *string) {
	if src != nil {
		*dst = strings.ToUpper(strings.TrimSpace(*src))
	}
}

// ToAprovisionamientoResponse mapea la entidad al DTO.
func ToAprovisionamientoResponse(a *entity.Aprovisionamiento) *dto.AprovisionamientoResponse {
	return &dto.AprovisionamientoResponse{
		ID:                      a.ID,
		CedulaCliente:           a.CedulaCliente,
		TipoRadio:               a.TipoRadio,
		MacSerialRadio:          a.MacSerialRadio,
		TipoRouterONU:           a.TipoRouterONU,
		MacSerialRouter:         a.MacSerialRouter,
		IPNavegacion:            a.IPNavegacion,
		IPGestion:               a.IPGestion,
		MetrosCable:             a.MetrosCable,
		TipoCable:               a.TipoCable,
		Notas:                   a.Notas,
		EstadoAprovisionamiento: a.EstadoAprovisionamiento,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}
