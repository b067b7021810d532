package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación.
func (r *StockRepo) Get(productoID, ubicacionID string) (*entity.Stock, error) {
	query := `
		SELECT producto_id, ubicacion_id, cantidad, last_movement_at
		FROM stock_actual WHERE producto_id = $1 AND ubicacion_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productoID, ubicacionID).Scan(
		&s.ProductoID, &s.UbicacionID, &s.Cantidad, &s.LastMovementAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductoID: productoID, UbicacionID: ubicacionID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si no existe devuelve una fila en cero lista para upsert.
func (r *StockRepo) GetForUpdate(productoID, ubicacionID string) (*entity.Stock, error) {
	// FOR UPDATE sólo bloquea filas existentes: asegurar la fila primero para
	// que dos primeros movimientos concurrentes sobre el mismo par serialicen.
	seed := `
		INSERT INTO stock_actual (producto_id, ubicacion_id, cantidad)
		VALUES ($1, $2, 0)
		ON CONFLICT (producto_id, ubicacion_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, productoID, ubicacionID); err != nil {
		return nil, fmt.Errorf("asegurar fila de stock: %w", err)
	}
	query := `
		SELECT producto_id, ubicacion_id, cantidad, last_movement_at
		FROM stock_actual WHERE producto_id = $1 AND ubicacion_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productoID, ubicacionID).Scan(
		&s.ProductoID, &s.UbicacionID, &s.Cantidad, &s.LastMovementAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductoID: productoID, UbicacionID: ubicacionID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y ubicación).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock_actual (producto_id, ubicacion_id, cantidad, last_movement_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (producto_id, ubicacion_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, last_movement_at = EXCLUDED.last_movement_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductoID, stock.UbicacionID, stock.Cantidad, stock.LastMovementAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListDetalle lista el stock actual con códigos de producto y ubicación
// resueltos, para listados y export CSV.
func (r *StockRepo) ListDetalle(filtro repository.StockFiltro, limit, offset int) ([]*repository.StockDetalle, error) {
	query := `
		SELECT s.producto_id, p.codigo, p.nombre, s.ubicacion_id, u.codigo, s.cantidad, s.last_movement_at
		FROM stock_actual s
		JOIN productos p ON p.id = s.producto_id
		JOIN ubicaciones u ON u.id = s.ubicacion_id
		WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.ProductoID != "" {
		query += fmt.Sprintf(" AND s.producto_id = $%d", i)
		args = append(args, filtro.ProductoID)
		i++
	}
	if filtro.UbicacionID != "" {
		query += fmt.Sprintf(" AND s.ubicacion_id = $%d", i)
		args = append(args, filtro.UbicacionID)
		i++
	}
	if filtro.SoloConStock {
		query += " AND s.cantidad <> 0"
	}
	query += " ORDER BY p.codigo, u.codigo"
	// limit <= 0 significa sin paginar (export CSV recorre todo el stock).
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockDetalle
	for rows.Next() {
		var d repository.StockDetalle
		if err := rows.Scan(&d.ProductoID, &d.ProductoCodigo, &d.ProductoNombre,
			&d.UbicacionID, &d.UbicacionCodigo, &d.Cantidad, &d.LastMovementAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListBajoMinimo lista productos activos cuya cantidad total (sumada sobre
// todas las ubicaciones) está por debajo del stock mínimo configurado.
func (r *StockRepo) ListBajoMinimo() ([]*repository.StockBajoMinimo, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, p.stock_minimo, COALESCE(SUM(s.cantidad), 0) AS total
		FROM productos p
		LEFT JOIN stock_actual s ON s.producto_id = p.id
		WHERE p.is_active AND p.stock_minimo > 0
		GROUP BY p.id, p.codigo, p.nombre, p.stock_minimo
		HAVING COALESCE(SUM(s.cantidad), 0) < p.stock_minimo
		ORDER BY p.codigo`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bajo minimo: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockBajoMinimo
	for rows.Next() {
		var b repository.StockBajoMinimo
		if err := rows.Scan(&b.ProductoID, &b.Codigo, &b.Nombre, &b.StockMinimo, &b.CantidadTotal); err != nil {
			return nil, fmt.Errorf("scan bajo minimo: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// DeleteAll vacía la tabla de stock. Sólo lo usa la reconciliación.
func (r *StockRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_actual`)
	if err != nil {
		return fmt.Errorf("delete all stock: %w", err)
	}
	return nil
}
