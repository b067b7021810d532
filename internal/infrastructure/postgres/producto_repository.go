package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, codigo, nombre, descripcion, categoria, subcategoria, unidad_medida,
		proveedor, stock_minimo, maneja_vencimiento, is_active, created_at, updated_at`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Subcategoria,
		&p.UnidadMedida, &p.Proveedor, &p.StockMinimo, &p.ManejaVencimiento,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, categoria, subcategoria, unidad_medida,
			proveedor, stock_minimo, maneja_vencimiento, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Categoria, p.Subcategoria, p.UnidadMedida,
		p.Proveedor, p.StockMinimo, p.ManejaVencimiento, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByCodigo obtiene un producto por código (ya normalizado en mayúsculas).
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by codigo: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. El código no se modifica.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, categoria = $4, subcategoria = $5,
			unidad_medida = $6, proveedor = $7, stock_minimo = $8, maneja_vencimiento = $9,
			is_active = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Categoria, p.Subcategoria, p.UnidadMedida,
		p.Proveedor, p.StockMinimo, p.ManejaVencimiento, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List lista productos con filtros y paginación.
func (r *ProductoRepo) List(filtro repository.ProductoFiltro, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.Q != "" {
		query += fmt.Sprintf(" AND (codigo ILIKE $%d OR nombre ILIKE $%d)", i, i)
		args = append(args, "%"+filtro.Q+"%")
		i++
	}
	if filtro.Activo != nil {
		query += fmt.Sprintf(" AND is_active = $%d", i)
		args = append(args, *filtro.Activo)
		i++
	}
	if filtro.Categoria != "" {
		query += fmt.Sprintf(" AND categoria = $%d", i)
		args = append(args, filtro.Categoria)
		i++
	}
	query += fmt.Sprintf(" ORDER BY codigo LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Si tiene movimientos, la FK lo bloquea
// y se devuelve ErrConflict.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
