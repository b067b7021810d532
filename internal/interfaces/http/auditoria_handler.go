package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// AuditoriaHandler consulta del log de auditoría (sólo gerencia).
type AuditoriaHandler struct {
	uc  *usecase.AuditoriaUseCase
	loc *time.Location
}

// NewAuditoriaHandler construye el handler.
func NewAuditoriaHandler(uc *usecase.AuditoriaUseCase, loc *time.Location) *AuditoriaHandler {
	return &AuditoriaHandler{uc: uc, loc: loc}
}

// List godoc
// @Summary      Consultar auditoría
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        username  query  string  false  "Filtrar por usuario"
// @Param        app_area  query  string  false  "Área (panol, flota, salidas...)"
// @Param        action    query  string  false  "Acción (create, update, delete, login...)"
// @Param        desde     query  string  false  "YYYY-MM-DD"
// @Param        hasta     query  string  false  "YYYY-MM-DD"
// @Param        limit     query  int     false  "Límite"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  dto.AuditListResponse
// @Router       /api/auditoria [get]
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	filtro := repository.AuditFiltro{
		Username: c.Query("username"),
		AppArea:  c.Query("app_area"),
		Action:   c.Query("action"),
		Desde:    fechaQueryEnZona(c, "desde", h.loc),
	}
	if hasta := fechaQueryEnZona(c, "hasta", h.loc); hasta != nil {
		// el filtro es exclusivo por arriba; incluir el día pedido completo
		fin := hasta.AddDate(0, 0, 1)
		filtro.Hasta = &fin
	}
	out, err := h.uc.List(filtro, pageFromQuery(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Purge godoc
// @Summary      Purgar auditoría antigua
// @Description  Elimina eventos con más de N días de antigüedad (mínimo 30).
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  true  "Antigüedad mínima en días"
// @Success      200  {object}  dto.PurgeAuditResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auditoria/purgar [post]
func (h *AuditoriaHandler) Purge(c *fiber.Ctx) error {
	dias, err := strconv.Atoi(c.Query("dias"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro dias requerido"})
	}
	out, err := h.uc.Purge(dias)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
