package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// AuditoriaHandler consulta de la bitácora y catálogos de solo lectura.
type AuditoriaHandler struct {
	auditoria *usecase.AuditoriaUseCase
	catalogo  *usecase.CatalogoUseCase
	log       *logger.Logger
}

// NewAuditoriaHandler construye el handler.
func NewAuditoriaHandler(auditoria *usecase.AuditoriaUseCase, catalogo *usecase.CatalogoUseCase, log *logger.Logger) *AuditoriaHandler {
	return &AuditoriaHandler{auditoria: auditoria, catalogo: catalogo, log: log}
}

// List godoc
// @Summary      Bitácora de cambios
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        entidad  query  string  false  "venta, agendamiento, usuario, ..."
// @Param        usuario  query  string  false  "ID del usuario"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Response{data=dto.AuditoriaListResponse}
// @Router       /api/auditoria [get]
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.auditoria.List(c.UserContext(), c.Query("entidad"), c.Query("usuario"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Municipios godoc
// @Summary      Catálogo de municipios
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        departamento  query  string  false  "Filtra por departamento"
// @Success      200  {object}  dto.Response{data=[]dto.MunicipioResponse}
// @Router       /api/catalogos/municipios [get]
func (h *AuditoriaHandler) Municipios(c *fiber.Ctx) error {
	out, err := h.catalogo.Municipios(c.UserContext(), c.Query("departamento"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}
