package repository

import "github.com/gabiv12/panol-erp/internal/domain/entity"

// ProductoFiltro filtros de listado de productos.
type ProductoFiltro struct {
	Q         string // busca en código y nombre
	Activo    *bool
	Categoria string
}

// ProductoRepository define el puerto de persistencia para productos.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	List(filtro ProductoFiltro, limit, offset int) ([]*entity.Producto, error)
	// Delete falla con ErrConflict si existen movimientos que referencian
	// el producto (protección por clave foránea).
	Delete(id string) error
}
