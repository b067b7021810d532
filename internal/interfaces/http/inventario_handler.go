package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// InventarioHandler maneja el libro de movimientos y las consultas de stock
// (protegido; escrituras sólo pañol).
type InventarioHandler struct {
	movUC      *inventory.MovimientoUseCase
	consultaUC *inventory.ConsultaStockUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(movUC *inventory.MovimientoUseCase, consultaUC *inventory.ConsultaStockUseCase) *InventarioHandler {
	return &InventarioHandler{movUC: movUC, consultaUC: consultaUC}
}

func movimientoInputFromRequest(in dto.RegistrarMovimientoRequest, usuarioID string) inventory.MovimientoInputDTO {
	return inventory.MovimientoInputDTO{
		ProductoID:         in.ProductoID,
		UbicacionID:        in.UbicacionID,
		UbicacionDestinoID: in.UbicacionDestinoID,
		ColectivoID:        in.ColectivoID,
		Tipo:               in.Tipo,
		Cantidad:           in.Cantidad,
		Referencia:         in.Referencia,
		Observaciones:      in.Observaciones,
		Lote:               in.Lote,
		FechaVencimiento:   in.FechaVencimiento,
		UsuarioID:          usuarioID,
	}
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                 m.ID,
		ProductoID:         m.ProductoID,
		UbicacionID:        m.UbicacionID,
		UbicacionDestinoID: m.UbicacionDestinoID,
		ColectivoID:        m.ColectivoID,
		Tipo:               m.Tipo,
		Cantidad:           m.Cantidad,
		Referencia:         m.Referencia,
		Observaciones:      m.Observaciones,
		Lote:               m.Lote,
		FechaVencimiento:   m.FechaVencimiento,
		Fecha:              m.Fecha,
		UsuarioID:          m.UsuarioID,
	}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de stock
// @Description  INGRESO suma, EGRESO resta (falla si queda negativo), AJUSTE suma con signo, TRANSFERENCIA mueve entre ubicaciones.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.movUC.RegistrarMovimiento(c.Context(), movimientoInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoResponse(m))
}

// ActualizarMovimiento godoc
// @Summary      Editar movimiento
// @Description  Revierte el efecto original y aplica el nuevo en una sola transacción.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.MovimientoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [put]
func (h *InventarioHandler) ActualizarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.movUC.ActualizarMovimiento(c.Context(), c.Params("id"), movimientoInputFromRequest(in, GetUserID(c)))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toMovimientoResponse(m))
}

// EliminarMovimiento godoc
// @Summary      Eliminar movimiento
// @Description  Revierte el efecto sobre el stock y borra el registro del libro.
// @Tags         inventario
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [delete]
func (h *InventarioHandler) EliminarMovimiento(c *fiber.Ctx) error {
	if err := h.movUC.EliminarMovimiento(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListarMovimientos godoc
// @Summary      Listar movimientos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id   query  string  false  "Filtra por producto"
// @Param        ubicacion_id  query  string  false  "Filtra por ubicación (origen o destino)"
// @Param        colectivo_id  query  string  false  "Filtra por unidad"
// @Param        tipo          query  string  false  "INGRESO | EGRESO | AJUSTE | TRANSFERENCIA"
// @Param        desde         query  string  false  "YYYY-MM-DD"
// @Param        hasta         query  string  false  "YYYY-MM-DD (exclusivo)"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *fiber.Ctx) error {
	filtro := repository.MovimientoFiltro{
		ProductoID:  c.Query("producto_id"),
		UbicacionID: c.Query("ubicacion_id"),
		ColectivoID: c.Query("colectivo_id"),
		Tipo:        c.Query("tipo"),
	}
	filtro.Desde = fechaQuery(c, "desde")
	filtro.Hasta = fechaQuery(c, "hasta")
	page := pageFromQuery(c)
	list, err := h.consultaUC.ListarMovimientos(filtro, page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return c.JSON(items)
}

// ListarStock godoc
// @Summary      Stock actual por producto y ubicación
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id   query  string  false  "Filtra por producto"
// @Param        ubicacion_id  query  string  false  "Filtra por ubicación"
// @Param        con_stock     query  bool    false  "Omite filas en cero"
// @Success      200  {array}  dto.StockResponse
// @Router       /api/inventario/stock [get]
func (h *InventarioHandler) ListarStock(c *fiber.Ctx) error {
	filtro := repository.StockFiltro{
		ProductoID:   c.Query("producto_id"),
		UbicacionID:  c.Query("ubicacion_id"),
		SoloConStock: c.QueryBool("con_stock", false),
	}
	page := pageFromQuery(c)
	list, err := h.consultaUC.ListarStock(filtro, page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.StockResponse{
			ProductoID:      d.ProductoID,
			ProductoCodigo:  d.ProductoCodigo,
			ProductoNombre:  d.ProductoNombre,
			UbicacionID:     d.UbicacionID,
			UbicacionCodigo: d.UbicacionCodigo,
			Cantidad:        d.Cantidad,
			LastMovementAt:  d.LastMovementAt,
		})
	}
	return c.JSON(items)
}

// ExportarStock godoc
// @Summary      Exportar stock actual a CSV
// @Description  CSV separado por ";" (formato Excel AR).
// @Tags         inventario
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/inventario/stock/export [get]
func (h *InventarioHandler) ExportarStock(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_`+time.Now().Format("20060102")+`.csv"`)
	if err := h.consultaUC.ExportarStockCSV(c.Response().BodyWriter()); err != nil {
		return mapError(c, err)
	}
	return nil
}

// BajoMinimo godoc
// @Summary      Productos por debajo del stock mínimo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BajoMinimoResponse
// @Router       /api/inventario/stock/bajo-minimo [get]
func (h *InventarioHandler) BajoMinimo(c *fiber.Ctx) error {
	list, err := h.consultaUC.BajoMinimo()
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.BajoMinimoResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BajoMinimoResponse{
			ProductoID:    b.ProductoID,
			Codigo:        b.Codigo,
			Nombre:        b.Nombre,
			StockMinimo:   b.StockMinimo,
			CantidadTotal: b.CantidadTotal,
		})
	}
	return c.JSON(items)
}

// Reconciliar godoc
// @Summary      Reconstruir el stock desde el historial de movimientos
// @Description  Vacía la tabla de stock y la vuelve a derivar del libro completo, en una sola transacción.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  inventory.ResumenReconciliacion
// @Router       /api/inventario/stock/reconciliar [post]
func (h *InventarioHandler) Reconciliar(c *fiber.Ctx) error {
	resumen, err := h.movUC.Reconciliar(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resumen)
}

// fechaQuery parsea un parámetro de fecha YYYY-MM-DD (o RFC3339); nil si falta
// o es inválido.
func fechaQuery(c *fiber.Ctx, name string) *time.Time {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	return nil
}
