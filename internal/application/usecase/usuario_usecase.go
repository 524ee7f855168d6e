package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// UsuarioUseCase aplica reglas de negocio para usuarios del sistema.
type UsuarioUseCase struct {
	repo  repository.AdministradorRepository
	roles RoleValidator
	audit Auditor
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.AdministradorRepository, roles RoleValidator, audit Auditor) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, roles: roles, audit: auditorOrNop(audit)}
}

// Create registra un usuario; cédula y email son únicos.
func (uc *UsuarioUseCase) Create(ctx context.Context, actor Actor, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	cedula := strings.TrimSpace(in.Cedula)
	if email == "" || cedula == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRole(ctx, in.Modulo); err != nil {
		return nil, err
	}
	if err := uc.checkUnique(ctx, "", cedula, email); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("usuario: hash de contraseña: %w", err)
	}
	u := &entity.Administrador{
		ID:            uuid.New().String(),
		Cedula:        cedula,
		Nombre:        strings.TrimSpace(in.Nombre),
		Email:         email,
		PasswordHash:  string(hash),
		Modulo:        in.Modulo,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionCrear, "usuario", u.ID, u.Email)
	return ToUsuarioResponse(u), nil
}

// GetByID obtiene un usuario.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUsuarioResponse(u), nil
}

// Update edita los datos del usuario. Password vacío o ausente conserva el hash actual.
func (uc *UsuarioUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	cedula, email := u.Cedula, u.Email
	if in.Cedula != nil {
		cedula = strings.TrimSpace(*in.Cedula)
	}
	if in.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if cedula == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkUnique(ctx, u.ID, cedula, email); err != nil {
		return nil, err
	}
	u.Cedula, u.Email = cedula, email
	if in.Nombre != nil {
		u.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Modulo != nil && *in.Modulo != u.Modulo {
		if err := uc.checkRole(ctx, *in.Modulo); err != nil {
			return nil, err
		}
		u.Modulo = *in.Modulo
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("usuario: hash de contraseña: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionActualizar, "usuario", u.ID, u.Email)
	return ToUsuarioResponse(u), nil
}

// Delete elimina un usuario. Nadie puede eliminarse a sí mismo.
func (uc *UsuarioUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if id == actor.UserID {
		return domain.ErrCannotDeleteSelf
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actor, entity.AccionEliminar, "usuario", u.ID, u.Email)
	return nil
}

// List lista usuarios con búsqueda por nombre, cédula o email.
func (uc *UsuarioUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.UsuarioListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.ListFilter{Search: strings.TrimSpace(search), Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.UsuarioListResponse{
		Items: make([]dto.UsuarioResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, u := range list {
		out.Items = append(out.Items, *ToUsuarioResponse(u))
	}
	return out, nil
}

func (uc *UsuarioUseCase) checkRole(ctx context.Context, role string) error {
	if uc.roles == nil {
		return nil
	}
	ok, err := uc.roles.IsValidRole(ctx, role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: rol %q no existe", domain.ErrInvalidInput, role)
	}
	return nil
}

// checkUnique verifica cédula y email contra otros usuarios distintos de selfID.
func (uc *UsuarioUseCase) checkUnique(ctx context.Context, selfID, cedula, email string) error {
	byCedula, err := uc.repo.GetByCedula(ctx, cedula)
	if err != nil {
		return err
	}
	if byCedula != nil && byCedula.ID != selfID {
		return fmt.Errorf("%w: cédula ya registrada", domain.ErrDuplicate)
	}
	byEmail, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if byEmail != nil && byEmail.ID != selfID {
		return fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
	}
	return nil
}

// ToUsuarioResponse mapea la entidad sin exponer el hash.
func ToUsuarioResponse(u *entity.Administrador) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Cedula:        u.Cedula,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Modulo:        u.Modulo,
		FechaCreacion: u.FechaCreacion,
	}
}
