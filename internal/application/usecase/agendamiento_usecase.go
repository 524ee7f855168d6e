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
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

const notifyTimeout = 20 * time.Second

// AgendamientoUseCase programación de visitas de instalación.
type AgendamientoUseCase struct {
	repo     repository.AgendamientoRepository
	ventas   repository.VentaRepository
	notifier VisitNotifier
	audit    Auditor
	log      *logger.Logger
}

// NewAgendamientoUseCase construye el caso de uso. notifier nil desactiva los correos.
func NewAgendamientoUseCase(repo repository.AgendamientoRepository, ventas repository.VentaRepository, notifier VisitNotifier, audit Auditor, log *logger.Logger) *AgendamientoUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AgendamientoUseCase{repo: repo, ventas: ventas, notifier: notifier, audit: auditorOrNop(audit), log: log.Component("agendamiento")}
}

// Create programa una visita. El cliente debe tener una venta y la fecha no puede estar en el pasado.
func (uc *AgendamientoUseCase) Create(ctx context.Context, actor Actor, in dto.CreateAgendamientoRequest) (*dto.AgendamientoResponse, error) {
	cedula := strings.TrimSpace(in.CedulaCliente)
	venta, err := uc.ventas.GetLatestByCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrVentaNotFound
	}
	fecha, err := futureDate(in.FechaVisita)
	if err != nil {
		return nil, err
	}
	estado := in.EstadoVisita
	if estado == "" {
		estado = entity.VisitaPendiente
	}
	now := time.Now()
	a := &entity.Agendamiento{
		ID:              uuid.New().String(),
		CedulaCliente:   cedula,
		FechaVisita:     fecha,
		FranjaVisita:    in.FranjaVisita,
		TecnicoAsignado: strings.TrimSpace(in.TecnicoAsignado),
		EstadoVisita:    estado,
		Notas:           strings.TrimSpace(in.Notas),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionCrear, "agendamiento", a.ID, fmt.Sprintf("%s %s %s", a.CedulaCliente, formatDate(a.FechaVisita), a.FranjaVisita))
	uc.notify(venta, a)
	return ToAgendamientoResponse(a), nil
}

// GetByID obtiene una visita.
func (uc *AgendamientoUseCase) GetByID(ctx context.Context, id string) (*dto.AgendamientoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return ToAgendamientoResponse(a), nil
}

// Update edita la visita. Mover la fecha de una visita Programada sin indicar estado la deja Reprogramada.
func (uc *AgendamientoUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateAgendamientoRequest) (*dto.AgendamientoResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	changed := false
	if in.FechaVisita != nil {
		fecha, err := parseDate(*in.FechaVisita)
		if err != nil || fecha == nil {
			return nil, fmt.Errorf("%w: fecha_visita", domain.ErrInvalidInput)
		}
		if formatDate(*fecha) != formatDate(a.FechaVisita) {
			if fecha.Before(today()) {
				return nil, fmt.Errorf("%w: la fecha de visita no puede estar en el pasado", domain.ErrInvalidInput)
			}
			a.FechaVisita = *fecha
			changed = true
		}
	}
	if in.FranjaVisita != nil && *in.FranjaVisita != a.FranjaVisita {
		a.FranjaVisita = *in.FranjaVisita
		changed = true
	}
	setTrimmed(&a.TecnicoAsignado, in.TecnicoAsignado)
	setTrimmed(&a.Notas, in.Notas)
	switch {
	case in.EstadoVisita != nil:
		a.EstadoVisita = *in.EstadoVisita
	case changed && a.EstadoVisita == entity.VisitaProgramada:
		a.EstadoVisita = entity.VisitaReprogramada
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionActualizar, "agendamiento", a.ID, a.EstadoVisita)
	if changed {
		venta, err := uc.ventas.GetLatestByCedula(ctx, a.CedulaCliente)
		if err != nil {
			uc.log.Warn().Err(err).Str("agendamiento_id", a.ID).Msg("no se pudo cargar la venta para notificar")
		} else if venta != nil {
			uc.notify(venta, a)
		}
	}
	return ToAgendamientoResponse(a), nil
}

// Delete elimina una visita.
func (uc *AgendamientoUseCase) Delete(ctx context.Context, actor Actor, id string) error {
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
	uc.audit.Record(ctx, actor, entity.AccionEliminar, "agendamiento", a.ID, a.CedulaCliente)
	return nil
}

// List lista visitas con filtros.
func (uc *AgendamientoUseCase) List(ctx context.Context, q dto.AgendamientoListQuery) (*dto.AgendamientoListResponse, error) {
	desde, hasta, err := ParseRange(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	limit, offset := normalizePage(q.Limit, q.Offset)
	list, total, err := uc.repo.List(ctx, repository.AgendamientoFilter{
		Search:  strings.TrimSpace(q.Search),
		Estado:  strings.TrimSpace(q.Estado),
		Tecnico: strings.TrimSpace(q.Tecnico),
		Desde:   desde,
		Hasta:   hasta,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.AgendamientoListResponse{
		Items: make([]dto.AgendamientoResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, a := range list {
		out.Items = append(out.Items, *ToAgendamientoResponse(a))
	}
	return out, nil
}

// notify envía el correo en segundo plano; un fallo solo se registra en el log.
func (uc *AgendamientoUseCase) notify(venta *entity.Venta, a *entity.Agendamiento) {
	if uc.notifier == nil || venta.Email == "" {
		return
	}
	v, visita := *venta, *a
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.NotifyVisita(ctx, &v, &visita); err != nil {
			uc.log.Warn().Err(err).Str("agendamiento_id", visita.ID).Str("email", v.Email).Msg("no se pudo notificar la visita")
			return
		}
		uc.log.Debug().Str("agendamiento_id", visita.ID).Msg("visita notificada")
	}()
}

func futureDate(s string) (time.Time, error) {
	fecha, err := parseDate(s)
	if err != nil || fecha == nil {
		return time.Time{}, fmt.Errorf("%w: fecha_visita", domain.ErrInvalidInput)
	}
	if fecha.Before(today()) {
		return time.Time{}, fmt.Errorf("%w: la fecha de visita no puede estar en el pasado", domain.ErrInvalidInput)
	}
	return *fecha, nil
}

// ToAgendamientoResponse mapea la entidad al DTO.
func ToAgendamientoResponse(a *entity.Agendamiento) *dto.AgendamientoResponse {
	return &dto.AgendamientoResponse{
		ID:              a.ID,
		CedulaCliente:   a.CedulaCliente,
		FechaVisita:     formatDate(a.FechaVisita),
		FranjaVisita:    a.FranjaVisita,
		TecnicoAsignado: a.TecnicoAsignado,
		EstadoVisita:    a.EstadoVisita,
		Notas:           a.Notas,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
