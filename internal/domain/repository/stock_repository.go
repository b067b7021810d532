package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// StockDetalle fila de consulta de stock con los códigos resueltos, para
// listados y export CSV.
type StockDetalle struct {
	ProductoID      string
	ProductoCodigo  string
	ProductoNombre  string
	UbicacionID     string
	UbicacionCodigo string
	Cantidad        decimal.Decimal
	LastMovementAt  *time.Time
}

// StockBajoMinimo fila del reporte de productos por debajo del stock mínimo.
type StockBajoMinimo struct {
	ProductoID    string
	Codigo        string
	Nombre        string
	StockMinimo   decimal.Decimal
	CantidadTotal decimal.Decimal // sumada sobre todas las ubicaciones
}

// StockFiltro filtros de consulta de stock actual.
type StockFiltro struct {
	ProductoID   string
	UbicacionID  string
	SoloConStock bool // omite filas en cero
}

// StockRepository define el puerto para consultar/actualizar el stock actual
// por producto+ubicación. Las mutaciones siempre ocurren dentro de una
// transacción, vía el motor de stock.
type StockRepository interface {
	Get(productoID, ubicacionID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); si no
	// existe devuelve una fila en cero lista para upsert.
	GetForUpdate(productoID, ubicacionID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// ListDetalle lista el stock con códigos resueltos; limit <= 0
	// devuelve todas las filas (lo usa el export CSV).
	ListDetalle(filtro StockFiltro, limit, offset int) ([]*StockDetalle, error)
	ListBajoMinimo() ([]*StockBajoMinimo, error)
	// DeleteAll vacía la tabla; sólo lo usa la reconciliación offline.
	DeleteAll() error
}
