package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// PermisoHandler CRUD de permisos.
type PermisoHandler struct {
	uc  *usecase.PermisoUseCase
	log *logger.Logger
}

// NewPermisoHandler construye el handler.
func NewPermisoHandler(uc *usecase.PermisoUseCase, log *logger.Logger) *PermisoHandler {
	return &PermisoHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePermisoRequest  true  "Datos del permiso"
// @Success      201   {object}  dto.Response{data=dto.PermisoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/permisos [post]
func (h *PermisoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermisoRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener permiso
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.Response{data=dto.PermisoResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [get]
func (h *PermisoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar permisos
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response{data=dto.PermisoListResponse}
// @Router       /api/permisos [get]
func (h *PermisoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del permiso"
// @Param        body  body  dto.UpdatePermisoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.PermisoResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [put]
func (h *PermisoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePermisoRequest
	if valid, err := bindAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar permiso (y sus asignaciones)
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [delete]
func (h *PermisoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "permiso eliminado")
}
