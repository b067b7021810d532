package repository

import (
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// MovimientoFiltro filtros de listado de movimientos.
type MovimientoFiltro struct {
	ProductoID  string
	UbicacionID string
	ColectivoID string
	Tipo        string
	Desde       *time.Time
	Hasta       *time.Time
}

// MovimientoRepository define el puerto de persistencia del libro de
// movimientos de stock.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	Update(m *entity.Movimiento) error
	Delete(id string) error
	List(filtro MovimientoFiltro, limit, offset int) ([]*entity.Movimiento, error)
	// ListTodos devuelve el historial completo en orden de fecha; lo usa la
	// reconciliación para reconstruir StockActual desde cero.
	ListTodos() ([]*entity.Movimiento, error)
}
