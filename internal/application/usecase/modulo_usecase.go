package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

// ModuleService resuelve qué módulos ve cada rol y administra la tabla modulo_permisos.
// Es el único punto de la aplicación que conoce la lógica rol → permisos → módulos.
type ModuleService struct {
	repo        repository.ModuloRepository
	permisoRepo repository.PermisoRepository
	tx          ModulosTxRunner
	audit       Auditor
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(repo repository.ModuloRepository, permisoRepo repository.PermisoRepository, tx ModulosTxRunner, audit Auditor) *ModuleService {
	return &ModuleService{repo: repo, permisoRepo: permisoRepo, tx: tx, audit: auditorOrNop(audit)}
}

// VisibleModules devuelve las entradas del catálogo que el rol puede ver.
// Administrador ve todo; el resto ve los módulos cuyo nombre coincide con un permiso asignado.
func (s *ModuleService) VisibleModules(ctx context.Context, role string) ([]entity.ModuloInfo, error) {
	if role == "" {
		return nil, fmt.Errorf("module: role es obligatorio")
	}
	if role == entity.RoleAdministrador {
		out := make([]entity.ModuloInfo, len(entity.Catalog))
		copy(out, entity.Catalog)
		return out, nil
	}
	keys, err := s.permisoKeys(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ModuloInfo, 0, len(keys))
	for _, m := range entity.Catalog {
		if _, ok := keys[m.Key]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// HasModule informa si el rol puede acceder al módulo. Devuelve error solo ante fallos de infraestructura.
func (s *ModuleService) HasModule(ctx context.Context, role, moduleKey string) (bool, error) {
	if role == "" || moduleKey == "" {
		return false, fmt.Errorf("module: role y moduleKey son obligatorios")
	}
	if role == entity.RoleAdministrador {
		return true, nil
	}
	keys, err := s.permisoKeys(ctx, role)
	if err != nil {
		return false, err
	}
	_, ok := keys[NormalizeKey(moduleKey)]
	return ok, nil
}

// HasPermission informa si el rol tiene asignado el permiso (capacidad que no es módulo).
func (s *ModuleService) HasPermission(ctx context.Context, role, permiso string) (bool, error) {
	return s.HasModule(ctx, role, permiso)
}

func (s *ModuleService) permisoKeys(ctx context.Context, role string) (map[string]struct{}, error) {
	permisos, err := s.repo.PermisosByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("module: permisos del rol %s: %w", role, err)
	}
	keys := make(map[string]struct{}, len(permisos))
	for _, p := range permisos {
		keys[NormalizeKey(p.Nombre)] = struct{}{}
	}
	return keys, nil
}

// IsValidRole acepta Administrador o el nombre de un módulo del catálogo en base de datos.
func (s *ModuleService) IsValidRole(ctx context.Context, role string) (bool, error) {
	if role == entity.RoleAdministrador {
		return true, nil
	}
	if strings.TrimSpace(role) == "" {
		return false, nil
	}
	return s.repo.ExistsByNombre(ctx, role)
}

// ListModulos lista la tabla de módulos.
func (s *ModuleService) ListModulos(ctx context.Context) ([]dto.ModuloResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModuloResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ModuloResponse{ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion})
	}
	return out, nil
}

// ListRoles devuelve Administrador seguido de los nombres de módulo.
func (s *ModuleService) ListRoles(ctx context.Context) ([]string, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(list)+1)
	roles = append(roles, entity.RoleAdministrador)
	for _, m := range list {
		roles = append(roles, m.Nombre)
	}
	return roles, nil
}

// RolPermisos devuelve los permisos del rol y los módulos que habilitan.
func (s *ModuleService) RolPermisos(ctx context.Context, role string) (*dto.RolPermisosResponse, error) {
	if err := s.requireAssignableRole(ctx, role); err != nil {
		return nil, err
	}
	permisos, err := s.repo.PermisosByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	modulos, err := s.VisibleModules(ctx, role)
	if err != nil {
		return nil, err
	}
	out := &dto.RolPermisosResponse{
		Rol:      role,
		Permisos: make([]dto.PermisoResponse, 0, len(permisos)),
		Modulos:  ToModuloInfoDTOs(modulos),
	}
	for _, p := range permisos {
		out.Permisos = append(out.Permisos, *toPermisoResponse(p))
	}
	return out, nil
}

// SetRolPermisos reemplaza en una transacción el conjunto de permisos del rol.
func (s *ModuleService) SetRolPermisos(ctx context.Context, actor Actor, role string, permisoIDs []string) (*dto.RolPermisosResponse, error) {
	if err := s.requireAssignableRole(ctx, role); err != nil {
		return nil, err
	}
	ids := dedupe(permisoIDs)
	for _, id := range ids {
		p, err := s.permisoRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: permiso %s", domain.ErrNotFound, id)
		}
	}
	err := s.tx.RunModulos(ctx, func(repo repository.ModuloRepository) error {
		if err := repo.RevokeAll(ctx, role); err != nil {
			return err
		}
		for _, id := range ids {
			if err := repo.AssignPermiso(ctx, role, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("module: reemplazar permisos de %s: %w", role, err)
	}
	s.audit.Record(ctx, actor, entity.AccionActualizar, "modulo_permisos", role, fmt.Sprintf("%d permisos asignados", len(ids)))
	return s.RolPermisos(ctx, role)
}

// AssignPermiso agrega un permiso al rol; asignar uno ya presente no es error.
func (s *ModuleService) AssignPermiso(ctx context.Context, actor Actor, role, permisoID string) error {
	if err := s.requireAssignableRole(ctx, role); err != nil {
		return err
	}
	p, err := s.permisoRepo.GetByID(ctx, permisoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := s.repo.AssignPermiso(ctx, role, permisoID); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, entity.AccionCrear, "modulo_permisos", role, "asigna "+p.Nombre)
	return nil
}

// RevokePermiso quita un permiso del rol.
func (s *ModuleService) RevokePermiso(ctx context.Context, actor Actor, role, permisoID string) error {
	if err := s.requireAssignableRole(ctx, role); err != nil {
		return err
	}
	if err := s.repo.RevokePermiso(ctx, role, permisoID); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, entity.AccionEliminar, "modulo_permisos", role, "revoca "+permisoID)
	return nil
}

// requireAssignableRole: Administrador no usa permisos, así que no se le asignan.
func (s *ModuleService) requireAssignableRole(ctx context.Context, role string) error {
	if role == entity.RoleAdministrador {
		return fmt.Errorf("%w: el rol Administrador tiene acceso total y no recibe permisos", domain.ErrInvalidInput)
	}
	ok, err := s.repo.ExistsByNombre(ctx, role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: rol %s", domain.ErrNotFound, role)
	}
	return nil
}

// ToModuloInfoDTOs convierte entradas del catálogo al DTO del menú.
func ToModuloInfoDTOs(list []entity.ModuloInfo) []dto.ModuloInfo {
	out := make([]dto.ModuloInfo, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ModuloInfo{Key: m.Key, Nombre: m.Nombre, Ruta: m.Ruta, Icono: m.Icono})
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
