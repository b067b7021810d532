package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ColectivoHandler maneja las peticiones HTTP para unidades de flota (protegido).
type ColectivoHandler struct {
	uc *usecase.ColectivoUseCase
}

// NewColectivoHandler construye el handler.
func NewColectivoHandler(uc *usecase.ColectivoUseCase) *ColectivoHandler {
	return &ColectivoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad
// @Tags         colectivos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColectivoRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.ColectivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colectivos [post]
func (h *ColectivoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateColectivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Interno <= 0 || in.Dominio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "interno y dominio son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad por ID
// @Tags         colectivos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.ColectivoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colectivos/{id} [get]
func (h *ColectivoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades
// @Tags         colectivos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Busca en dominio, marca y modelo"
// @Param        estado  query  string  false  "ACTIVO | TALLER | BAJA"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.ColectivoResponse
// @Router       /api/colectivos [get]
func (h *ColectivoHandler) List(c *fiber.Ctx) error {
	filtro := repository.ColectivoFiltro{
		Q:      c.Query("q"),
		Estado: c.Query("estado"),
	}
	if v := c.Query("activo"); v != "" {
		b := v == "true" || v == "1"
		filtro.Activo = &b
	}
	out, err := h.uc.List(filtro, pageFromQuery(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad
// @Tags         colectivos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateColectivoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ColectivoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/colectivos/{id} [put]
func (h *ColectivoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateColectivoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad
// @Tags         colectivos
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/colectivos/{id} [delete]
func (h *ColectivoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Alertas godoc
// @Summary      Alertas de mantenimiento de una unidad
// @Description  Vencimientos (revisión técnica, matafuego) y servicios por km (aceite, filtros).
// @Tags         colectivos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {array}  flota.AlertaColectivo
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colectivos/{id}/alertas [get]
func (h *ColectivoHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// AlertasFlota godoc
// @Summary      Alertas de mantenimiento de toda la flota
// @Description  Sólo unidades activas con al menos una alerta, agrupadas por interno.
// @Tags         colectivos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[int][]flota.AlertaColectivo
// @Router       /api/colectivos/alertas [get]
func (h *ColectivoHandler) AlertasFlota(c *fiber.Ctx) error {
	out, err := h.uc.AlertasFlota()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
