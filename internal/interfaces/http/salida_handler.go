package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// SalidaHandler maneja el diagrama de salidas (protegido; escrituras diagramador).
type SalidaHandler struct {
	uc  *flota.SalidaUseCase
	loc *time.Location
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(uc *flota.SalidaUseCase, loc *time.Location) *SalidaHandler {
	return &SalidaHandler{uc: uc, loc: loc}
}

func salidaInputFromRequest(in dto.SalidaRequest) flota.SalidaInputDTO {
	out := flota.SalidaInputDTO{
		ColectivoID:      in.ColectivoID,
		SalidaProgramada: in.SalidaProgramada,
		Regreso:          in.Regreso,
		Recorrido:        in.Recorrido,
		Seccion:          in.Seccion,
		Tipo:             in.Tipo,
		Estado:           in.Estado,
		Nota:             in.Nota,
	}
	if in.ChoferID != nil {
		out.ChoferID = *in.ChoferID
	}
	return out
}

func (h *SalidaHandler) toSalidaResponses(salidas []*entity.Salida) []dto.SalidaResponse {
	resueltas := h.uc.Resueltas(salidas)
	items := make([]dto.SalidaResponse, 0, len(resueltas))
	for _, r := range resueltas {
		s := r.Salida
		items = append(items, dto.SalidaResponse{
			ID:               s.ID,
			ColectivoID:      s.ColectivoID,
			Interno:          r.Interno,
			Dominio:          r.Dominio,
			ChoferID:         s.ChoferID,
			Chofer:           r.Chofer,
			SalidaProgramada: s.SalidaProgramada.In(h.loc),
			Regreso:          s.Regreso,
			Recorrido:        s.Recorrido,
			Seccion:          s.Seccion,
			Tipo:             s.Tipo,
			Estado:           s.Estado,
			Nota:             s.Nota,
		})
	}
	return items
}

// Create godoc
// @Summary      Agregar salida al diagrama
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalidaRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.SalidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/salidas [post]
func (h *SalidaHandler) Create(c *fiber.Ctx) error {
	var in dto.SalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Crear(c.Context(), salidaInputFromRequest(in))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toSalidaResponses([]*entity.Salida{s})[0])
}

// Update godoc
// @Summary      Editar salida
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.SalidaRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.SalidaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [put]
func (h *SalidaHandler) Update(c *fiber.Ctx) error {
	var in dto.SalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Actualizar(c.Context(), c.Params("id"), salidaInputFromRequest(in))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(h.toSalidaResponses([]*entity.Salida{s})[0])
}

// Delete godoc
// @Summary      Quitar salida del diagrama
// @Tags         salidas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [delete]
func (h *SalidaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListarDia godoc
// @Summary      Salidas del día
// @Description  Sin parámetro dia aplica la heurística: desde las 18 hs se muestra mañana; si el día preferido está vacío cae al último día con salidas.
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Param        dia  query  string  false  "YYYY-MM-DD (explícito gana a la heurística)"
// @Success      200  {object}  dto.DiaSalidasResponse
// @Router       /api/salidas [get]
func (h *SalidaHandler) ListarDia(c *fiber.Ctx) error {
	dia, salidas, err := h.uc.ListarDia(time.Now(), fechaQueryEnZona(c, "dia", h.loc))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.DiaSalidasResponse{
		Dia:     dia.Format("2006-01-02"),
		Salidas: h.toSalidaResponses(salidas),
	})
}

// Dual godoc
// @Summary      Tablero dual hoy/mañana
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DualResponse
// @Router       /api/salidas/dual [get]
func (h *SalidaHandler) Dual(c *fiber.Ctx) error {
	now := time.Now().In(h.loc)
	dias, err := h.uc.Dual(now)
	if err != nil {
		return mapError(c, err)
	}
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	return c.JSON(dto.DualResponse{
		Hoy: dto.DiaSalidasResponse{
			Dia:     hoy.Format("2006-01-02"),
			Salidas: h.toSalidaResponses(dias["hoy"]),
		},
		Manana: dto.DiaSalidasResponse{
			Dia:     hoy.AddDate(0, 0, 1).Format("2006-01-02"),
			Salidas: h.toSalidaResponses(dias["manana"]),
		},
	})
}

// CopiarDiaAnterior godoc
// @Summary      Copiar el diagrama del día anterior
// @Description  Duplica las salidas de ayer hacia el día dado (default hoy). Si el destino ya tiene salidas devuelve 409.
// @Tags         salidas
// @Security     Bearer
// @Produce      json
// @Param        dia  query  string  false  "YYYY-MM-DD destino"
// @Success      200  {object}  map[string]int
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/salidas/copiar-dia [post]
func (h *SalidaHandler) CopiarDiaAnterior(c *fiber.Ctx) error {
	dia := time.Now().In(h.loc)
	if t := fechaQueryEnZona(c, "dia", h.loc); t != nil {
		dia = *t
	}
	copiadas, err := h.uc.CopiarDiaAnterior(c.Context(), dia)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"copiadas": copiadas})
}

// PlanDelDia godoc
// @Summary      Plan del día en PDF
// @Tags         salidas
// @Security     Bearer
// @Produce      application/pdf
// @Param        dia  query  string  false  "YYYY-MM-DD (explícito gana a la heurística)"
// @Success      200
// @Router       /api/salidas/plan.pdf [get]
func (h *SalidaHandler) PlanDelDia(c *fiber.Ctx) error {
	dia, pdf, err := h.uc.PlanDelDia(time.Now(), fechaQueryEnZona(c, "dia", h.loc))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="plan_`+dia.Format("2006-01-02")+`.pdf"`)
	return c.Send(pdf)
}

// fechaQueryEnZona parsea YYYY-MM-DD interpretado en la zona local de la
// operación; nil si falta o es inválido.
func fechaQueryEnZona(c *fiber.Ctx, name string, loc *time.Location) *time.Time {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, loc)
	if err != nil {
		return nil
	}
	return &t
}
