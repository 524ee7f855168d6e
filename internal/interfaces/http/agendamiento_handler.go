package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// AgendamientoHandler visitas de instalación.
type AgendamientoHandler struct {
	uc  *usecase.AgendamientoUseCase
	log *logger.Logger
}

// NewAgendamientoHandler construye el handler.
func NewAgendamientoHandler(uc *usecase.AgendamientoUseCase, log *logger.Logger) *AgendamientoHandler {
	return &AgendamientoHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Agendar visita
// @Description  El cliente debe tener una venta registrada con esa cédula; la fecha no puede estar en el pasado.
// @Tags         agendamiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgendamientoRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.Response{data=dto.AgendamientoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "VENTA_NOT_FOUND"
// @Router       /api/agendamiento [post]
func (h *AgendamientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgendamientoRequest
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
// @Summary      Obtener visita
// @Tags         agendamiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.Response{data=dto.AgendamientoResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agendamiento/{id} [get]
func (h *AgendamientoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar visitas
// @Tags         agendamiento
// @Security     Bearer
// @Produce      json
// @Param        q        query  string  false  "Cédula del cliente"
// @Param        estado   query  string  false  "Estado de la visita"
// @Param        tecnico  query  string  false  "Técnico asignado"
// @Param        desde    query  string  false  "YYYY-MM-DD"
// @Param        hasta    query  string  false  "YYYY-MM-DD"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Response{data=dto.AgendamientoListResponse}
// @Router       /api/agendamiento [get]
func (h *AgendamientoHandler) List(c *fiber.Ctx) error {
	var q dto.AgendamientoListQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Editar visita
// @Description  Cambiar fecha o franja de una visita Programada la deja Reprogramada y se notifica al cliente.
// @Tags         agendamiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la visita"
// @Param        body  body  dto.UpdateAgendamientoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.AgendamientoResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agendamiento/{id} [put]
func (h *AgendamientoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgendamientoRequest
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
// @Summary      Eliminar visita
// @Tags         agendamiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agendamiento/{id} [delete]
func (h *AgendamientoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "visita eliminada")
}
