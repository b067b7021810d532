package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// UbicacionHandler maneja las peticiones HTTP para ubicaciones (protegido).
type UbicacionHandler struct {
	uc *usecase.UbicacionUseCase
}

// NewUbicacionHandler construye el handler.
func NewUbicacionHandler(uc *usecase.UbicacionUseCase) *UbicacionHandler {
	return &UbicacionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         ubicaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUbicacionRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.UbicacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ubicaciones [post]
func (h *UbicacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         ubicaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.UbicacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ubicaciones/{id} [get]
func (h *UbicacionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         ubicaciones
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Busca en código y nombre"
// @Param        tipo   query  string  false  "DEPOSITO | UBICACION | ZONA | OTRO"
// @Param        limit  query  int     false  "Límite"  default(20)
// @Param        offset query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.UbicacionListResponse
// @Router       /api/ubicaciones [get]
func (h *UbicacionHandler) List(c *fiber.Ctx) error {
	filtro := repository.UbicacionFiltro{
		Q:    c.Query("q"),
		Tipo: c.Query("tipo"),
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
// @Summary      Actualizar ubicación
// @Tags         ubicaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ubicación"
// @Param        body  body  dto.UpdateUbicacionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UbicacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ubicaciones/{id} [put]
func (h *UbicacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUbicacionRequest
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
// @Summary      Eliminar ubicación
// @Tags         ubicaciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ubicaciones/{id} [delete]
func (h *UbicacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
