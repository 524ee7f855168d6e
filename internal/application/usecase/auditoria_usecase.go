package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// AuditoriaUseCase escribe y consulta la bitácora. Implementa Auditor.
type AuditoriaUseCase struct {
	repo repository.AuditoriaRepository
	log  *logger.Logger
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(repo repository.AuditoriaRepository, log *logger.Logger) *AuditoriaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuditoriaUseCase{repo: repo, log: log.Component("auditoria")}
}

// Record inserta la entrada. Un error se registra en el log y no se propaga.
func (uc *AuditoriaUseCase) Record(ctx context.Context, actor Actor, accion, entidad, entidadID, detalle string) {
	a := &entity.Auditoria{
		ID:            uuid.New().String(),
		UsuarioID:     actor.UserID,
		UsuarioNombre: actor.UserName,
		Accion:        accion,
		Entidad:       entidad,
		EntidadID:     entidadID,
		Detalle:       truncate(detalle, 500),
		IP:            actor.IP,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(context.WithoutCancel(ctx), a); err != nil {
		uc.log.Error().Err(err).
			Str("accion", accion).
			Str("entidad", entidad).
			Str("entidad_id", entidadID).
			Msg("no se pudo registrar auditoría")
	}
}

// List consulta la bitácora, más recientes primero.
func (uc *AuditoriaUseCase) List(ctx context.Context, entidad, usuarioID string, limit, offset int) (*dto.AuditoriaListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.AuditoriaFilter{
		Entidad:   strings.TrimSpace(entidad),
		UsuarioID: strings.TrimSpace(usuarioID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.AuditoriaListResponse{
		Items: make([]dto.AuditoriaResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, a := range list {
		out.Items = append(out.Items, dto.AuditoriaResponse{
			ID:            a.ID,
			UsuarioID:     a.UsuarioID,
			UsuarioNombre: a.UsuarioNombre,
			Accion:        a.Accion,
			Entidad:       a.Entidad,
			EntidadID:     a.EntidadID,
			Detalle:       a.Detalle,
			IP:            a.IP,
			CreatedAt:     a.CreatedAt,
		})
	}
	return out, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
