package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// VentaHandler registro de ventas, exportación y orden de instalación.
type VentaHandler struct {
	uc   *usecase.VentaUseCase
	docs *usecase.DocumentosUseCase
	log  *logger.Logger
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase, docs *usecase.DocumentosUseCase, log *logger.Logger) *VentaHandler {
	return &VentaHandler{uc: uc, docs: docs, log: log}
}

// Create godoc
// @Summary      Registrar venta
// @Description  El vendedor es el usuario en sesión.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Datos del cliente y del servicio"
// @Success      201   {object}  dto.Response{data=dto.VentaResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
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
// @Summary      Obtener venta
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Response{data=dto.VentaResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "Cédula, nombre o número de servicio"
// @Param        municipio   query  string  false  "Municipio"
// @Param        tecnologia  query  string  false  "Fibra óptica | Radio enlace"
// @Param        vendedor    query  string  false  "Cédula del vendedor"
// @Param        desde       query  string  false  "YYYY-MM-DD"
// @Param        hasta       query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Response{data=dto.VentaListResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var q dto.VentaListQuery
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
// @Summary      Editar venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.VentaResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVentaRequest
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
// @Summary      Eliminar venta
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return handleError(c, h.log, err)
	}
	return okMessage(c, "venta eliminada")
}

// Export godoc
// @Summary      Exportar ventas a CSV
// @Description  Separador ';' y codificación Windows-1252. Sin rango exporta el mes en curso.
// @Tags         ventas
// @Security     Bearer
// @Produce      text/csv
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/ventas/export [get]
func (h *VentaHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.UserContext(), actor(c), c.Query("desde"), c.Query("hasta"), &buf); err != nil {
		return handleError(c, h.log, err)
	}
	c.Attachment("ventas-" + time.Now().Format("20060102") + ".csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=windows-1252")
	return c.Send(buf.Bytes())
}

// Orden godoc
// @Summary      Orden de instalación en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/orden [get]
func (h *VentaHandler) Orden(c *fiber.Ctx) error {
	pdf, filename, err := h.docs.OrdenInstalacion(c.UserContext(), actor(c), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
