package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
)

// ChoferHandler maneja las peticiones HTTP para choferes (protegido).
type ChoferHandler struct {
	uc *usecase.ChoferUseCase
}

// NewChoferHandler construye el handler.
func NewChoferHandler(uc *usecase.ChoferUseCase) *ChoferHandler {
	return &ChoferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear chofer
// @Tags         choferes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChoferRequest  true  "Datos del chofer"
// @Success      201   {object}  dto.ChoferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/choferes [post]
func (h *ChoferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChoferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Legajo == "" || in.Apellido == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "legajo y apellido son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener chofer por ID
// @Tags         choferes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del chofer"
// @Success      200  {object}  dto.ChoferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/choferes/{id} [get]
func (h *ChoferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar choferes
// @Tags         choferes
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Busca en legajo, nombre y apellido"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.ChoferResponse
// @Router       /api/choferes [get]
func (h *ChoferHandler) List(c *fiber.Ctx) error {
	var activo *bool
	if v := c.Query("activo"); v != "" {
		b := v == "true" || v == "1"
		activo = &b
	}
	out, err := h.uc.List(c.Query("q"), activo, pageFromQuery(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar chofer
// @Tags         choferes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del chofer"
// @Param        body  body  dto.UpdateChoferRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ChoferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/choferes/{id} [put]
func (h *ChoferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChoferRequest
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
// @Summary      Eliminar chofer
// @Tags         choferes
// @Security     Bearer
// @Param        id  path  string  true  "ID del chofer"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/choferes/{id} [delete]
func (h *ChoferHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
