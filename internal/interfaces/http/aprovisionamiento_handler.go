package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// AprovisionamientoHandler equipos y direccionamiento por cliente.
type AprovisionamientoHandler struct {
	uc  *usecase.AprovisionamientoUseCase
	log *logger.Logger
}

// NewAprovisionamientoHandler construye el handler.
func NewAprovisionamientoHandler(uc *usecase.AprovisionamientoUseCase, log *logger.Logger) *AprovisionamientoHandler {
	return &AprovisionamientoHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar aprovisionamiento
// @Tags         aprovisionamiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAprovisionamientoRequest  true  "Equipos e IPs"
// @Success      201   {object}  dto.Response{data=dto.AprovisionamientoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "VENTA_NOT_FOUND"
// @Router       /api/aprovisionamiento [post]
func (h *AprovisionamientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAprovisionamientoRequest
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
// @Summary      Obtener aprovisionamiento
// @Tags         aprovisionamiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del aprovisionamiento"
// @Success      200  {object}  dto.Response{data=dto.AprovisionamientoResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aprovisionamiento/{id} [get]
func (h *AprovisionamientoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar aprovisionamientos
// @Tags         aprovisionamiento
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Cédula, MAC/serial o IP"
// @Param        estado  query  string  false  "Pendiente | En proceso | Completado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Response{data=dto.AprovisionamientoListResponse}
// @Router       /api/aprovisionamiento [get]
func (h *AprovisionamientoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("estado"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Cliente godoc
// @Summary      Datos del cliente para el formulario
// @Description  Última venta, visita y aprovisionamiento registrados para la cédula.
// @Tags         aprovisionamiento
// @Security     Bearer
// @Produce      json
// @Param        cedula  path  string  true  "Cédula del cliente"
// @Success      200  {object}  dto.Response{data=dto.ClienteResumenResponse}
// @Failure      422  {object}  dto.ErrorResponse  "VENTA_NOT_FOUND"
// @Router       /api/aprovisionamiento/cliente/{cedula} [get]
func (h *AprovisionamientoHandler) Cliente(c *fiber.Ctx) error {
	out, err := h.uc.ClienteResumen(c.UserContext(), c.Params("cedula"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Editar aprovisionamiento
// @Tags         aprovisionamiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                              true  "ID del aprovisionamiento"
// @Param        body  body  dto.UpdateAprovisionamientoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.AprovisionamientoResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/aprovisionamiento/{id} [put]
func (h *AprovisionamientoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAprovisionamientoRequest
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
// @Summary      Eliminar aprovisionamiento
// @Tags         aprovisionamiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del aprovisionamiento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aprovisionamiento/{id} [delete]
func (h *AprovisionamientoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "aprovisionamiento eliminado")
}
