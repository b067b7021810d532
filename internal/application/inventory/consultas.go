package inventory

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ConsultaStockUseCase consultas de sólo lectura sobre stock y movimientos:
// listados, reporte bajo mínimo y export CSV.
type ConsultaStockUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovimientoRepository
}

// NewConsultaStockUseCase construye el caso de uso.
func NewConsultaStockUseCase(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository) *ConsultaStockUseCase {
	return &ConsultaStockUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// ListarStock devuelve el stock actual con códigos resueltos.
func (uc *ConsultaStockUseCase) ListarStock(filtro repository.StockFiltro, limit, offset int) ([]*repository.StockDetalle, error) {
	return uc.stockRepo.ListDetalle(filtro, limit, offset)
}

// ListarMovimientos devuelve el libro de movimientos filtrado.
func (uc *ConsultaStockUseCase) ListarMovimientos(filtro repository.MovimientoFiltro, limit, offset int) ([]*entity.Movimiento, error) {
	return uc.movRepo.List(filtro, limit, offset)
}

// BajoMinimo devuelve los productos cuya cantidad total quedó por debajo del
// stock mínimo configurado.
func (uc *ConsultaStockUseCase) BajoMinimo() ([]*repository.StockBajoMinimo, error) {
	return uc.stockRepo.ListBajoMinimo()
}

// ExportarStockCSV escribe el stock actual como CSV (separador ";", formato
// con el que trabaja administración en Excel).
func (uc *ConsultaStockUseCase) ExportarStockCSV(w io.Writer) error {
	detalle, err := uc.stockRepo.ListDetalle(repository.StockFiltro{SoloConStock: true}, 0, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"producto_codigo", "producto_nombre", "ubicacion_codigo", "cantidad", "ultimo_movimiento"}); err != nil {
		return fmt.Errorf("escribir header CSV: %w", err)
	}
	for _, d := range detalle {
		last := ""
		if d.LastMovementAt != nil {
			last = d.LastMovementAt.Format("2006-01-02 15:04")
		}
		row := []string{d.ProductoCodigo, d.ProductoNombre, d.UbicacionCodigo, d.Cantidad.StringFixed(3), last}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
