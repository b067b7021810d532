package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ParteHandler maneja los partes diarios de flota (protegido; escrituras taller).
type ParteHandler struct {
	uc *flota.ParteUseCase
}

// NewParteHandler construye el handler.
func NewParteHandler(uc *flota.ParteUseCase) *ParteHandler {
	return &ParteHandler{uc: uc}
}

func parteInputFromRequest(in dto.ParteRequest, usuarioID string) flota.ParteInputDTO {
	return flota.ParteInputDTO{
		ColectivoID:         in.ColectivoID,
		FechaEvento:         in.FechaEvento,
		ReportadoPor:        usuarioID,
		Tipo:                in.Tipo,
		Severidad:           in.Severidad,
		Estado:              in.Estado,
		OdometroKm:          in.OdometroKm,
		AccionMantenimiento: in.AccionMantenimiento,
		KmMantenimiento:     in.KmMantenimiento,
		MatafuegoVtoNuevo:   in.MatafuegoVtoNuevo,
		AuxilioInicio:       in.AuxilioInicio,
		AuxilioFin:          in.AuxilioFin,
		Descripcion:         in.Descripcion,
		Observaciones:       in.Observaciones,
	}
}

func toParteResponse(p *entity.ParteDiario) dto.ParteResponse {
	return dto.ParteResponse{
		ID:                  p.ID,
		ColectivoID:         p.ColectivoID,
		FechaEvento:         p.FechaEvento,
		ReportadoPor:        p.ReportadoPor,
		Tipo:                p.Tipo,
		Severidad:           p.Severidad,
		Estado:              p.Estado,
		OdometroKm:          p.OdometroKm,
		AccionMantenimiento: p.AccionMantenimiento,
		KmMantenimiento:     p.KmMantenimiento,
		MatafuegoVtoNuevo:   p.MatafuegoVtoNuevo,
		AuxilioInicio:       p.AuxilioInicio,
		AuxilioFin:          p.AuxilioFin,
		DuracionAuxilioMin:  p.DuracionAuxilioMin(),
		Descripcion:         p.Descripcion,
		Observaciones:       p.Observaciones,
		CreatedAt:           p.CreatedAt,
	}
}

// Create godoc
// @Summary      Crear parte diario
// @Description  CHECKLIST, INCIDENCIA, MANTENIMIENTO (exige acción; aceite/filtros exigen km) o AUXILIO (exige inicio).
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParteRequest  true  "Datos del parte"
// @Success      201   {object}  dto.ParteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partes [post]
func (h *ParteHandler) Create(c *fiber.Ctx) error {
	var in dto.ParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Crear(c.Context(), parteInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toParteResponse(p))
}

// GetByID godoc
// @Summary      Obtener parte por ID
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del parte"
// @Success      200  {object}  dto.ParteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [get]
func (h *ParteHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parte no encontrado"})
	}
	return c.JSON(toParteResponse(p))
}

// List godoc
// @Summary      Listar partes diarios
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        colectivo_id  query  string  false  "Filtra por unidad"
// @Param        tipo          query  string  false  "CHECKLIST | INCIDENCIA | MANTENIMIENTO | AUXILIO"
// @Param        estado        query  string  false  "ABIERTO | EN_PROCESO | RESUELTO"
// @Param        severidad     query  string  false  "BAJA | MEDIA | ALTA | CRITICA"
// @Param        desde         query  string  false  "YYYY-MM-DD"
// @Param        hasta         query  string  false  "YYYY-MM-DD (exclusivo)"
// @Success      200  {array}  dto.ParteResponse
// @Router       /api/partes [get]
func (h *ParteHandler) List(c *fiber.Ctx) error {
	filtro := repository.ParteFiltro{
		ColectivoID: c.Query("colectivo_id"),
		Tipo:        c.Query("tipo"),
		Estado:      c.Query("estado"),
		Severidad:   c.Query("severidad"),
		Desde:       fechaQuery(c, "desde"),
		Hasta:       fechaQuery(c, "hasta"),
	}
	page := pageFromQuery(c)
	list, err := h.uc.Listar(filtro, page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.ParteResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toParteResponse(p))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Actualizar parte diario
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del parte"
// @Param        body  body  dto.ParteRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.ParteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [put]
func (h *ParteHandler) Update(c *fiber.Ctx) error {
	var in dto.ParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.Actualizar(c.Context(), c.Params("id"), parteInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toParteResponse(p))
}

// Delete godoc
// @Summary      Eliminar parte diario
// @Tags         partes
// @Security     Bearer
// @Param        id  path  string  true  "ID del parte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [delete]
func (h *ParteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
