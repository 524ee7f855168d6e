package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// ModuloHandler catálogo de módulos y asignación de permisos por rol.
type ModuloHandler struct {
	svc *usecase.ModuleService
	log *logger.Logger
}

// NewModuloHandler construye el handler.
func NewModuloHandler(svc *usecase.ModuleService, log *logger.Logger) *ModuloHandler {
	return &ModuloHandler{svc: svc, log: log}
}

// Visible godoc
// @Summary      Módulos visibles para el rol en sesión
// @Tags         modulos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ModuloInfo}
// @Router       /api/modulos/visibles [get]
func (h *ModuloHandler) Visible(c *fiber.Ctx) error {
	mods, err := h.svc.VisibleModules(c.UserContext(), GetRole(c))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, usecase.ToModuloInfoDTOs(mods))
}

// List godoc
// @Summary      Tabla de módulos (roles asignables)
// @Tags         modulos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ModuloResponse}
// @Router       /api/modulos [get]
func (h *ModuloHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.ListModulos(c.UserContext())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Roles godoc
// @Summary      Roles asignables a usuarios
// @Tags         modulos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]string}
// @Router       /api/roles [get]
func (h *ModuloHandler) Roles(c *fiber.Ctx) error {
	out, err := h.svc.ListRoles(c.UserContext())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// RolPermisos godoc
// @Summary      Permisos asignados a un rol
// @Tags         modulos
// @Security     Bearer
// @Produce      json
// @Param        rol  path  string  true  "Nombre del módulo/rol"
// @Success      200  {object}  dto.Response{data=dto.RolPermisosResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{rol}/permisos [get]
func (h *ModuloHandler) RolPermisos(c *fiber.Ctx) error {
	out, err := h.svc.RolPermisos(c.UserContext(), c.Params("rol"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// SetRolPermisos godoc
// @Summary      Reemplazar permisos de un rol
// @Tags         modulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rol   path  string                  true  "Nombre del módulo/rol"
// @Param        body  body  dto.SetPermisosRequest  true  "IDs de permisos"
// @Success      200   {object}  dto.Response{data=dto.RolPermisosResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{rol}/permisos [put]
func (h *ModuloHandler) SetRolPermisos(c *fiber.Ctx) error {
	var in dto.SetPermisosRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.svc.SetRolPermisos(c.UserContext(), actor(c), c.Params("rol"), in.PermisoIDs)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// AssignPermiso godoc
// @Summary      Asignar un permiso a un rol
// @Tags         modulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rol   path  string                    true  "Nombre del módulo/rol"
// @Param        body  body  dto.AssignPermisoRequest  true  "permiso_id"
// @Success      201   {object}  dto.Response
// @Router       /api/roles/{rol}/permisos [post]
func (h *ModuloHandler) AssignPermiso(c *fiber.Ctx) error {
	var in dto.AssignPermisoRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	if err := h.svc.AssignPermiso(c.UserContext(), actor(c), c.Params("rol"), in.PermisoID); err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: "permiso asignado"})
}

// RevokePermiso godoc
// @Summary      Quitar un permiso a un rol
// @Tags         modulos
// @Security     Bearer
// @Produce      json
// @Param        rol        path  string  true  "Nombre del módulo/rol"
// @Param        permisoId  path  string  true  "ID del permiso"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/roles/{rol}/permisos/{permisoId} [delete]
func (h *ModuloHandler) RevokePermiso(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("permisoId")); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "identificador de permiso inválido")
	}
	if err := h.svc.RevokePermiso(c.UserContext(), actor(c), c.Params("rol"), c.Params("permisoId")); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "permiso revocado")
}
