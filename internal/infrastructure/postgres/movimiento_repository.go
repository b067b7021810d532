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

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoColumns = `id, producto_id, ubicacion_id, ubicacion_destino_id, colectivo_id, tipo,
		cantidad, referencia, observaciones, lote, fecha_vencimiento, fecha, usuario_id, created_at`

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	err := row.Scan(
		&m.ID, &m.ProductoID, &m.UbicacionID, &m.UbicacionDestinoID, &m.ColectivoID, &m.Tipo,
		&m.Cantidad, &m.Referencia, &m.Observaciones, &m.Lote, &m.FechaVencimiento,
		&m.Fecha, &m.UsuarioID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, producto_id, ubicacion_id, ubicacion_destino_id, colectivo_id, tipo,
			cantidad, referencia, observaciones, lote, fecha_vencimiento, fecha, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.UbicacionID, m.UbicacionDestinoID, m.ColectivoID, m.Tipo,
		m.Cantidad, m.Referencia, m.Observaciones, m.Lote, m.FechaVencimiento,
		m.Fecha, m.UsuarioID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	m, err := scanMovimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// Update reescribe un movimiento existente (edición del libro). El ID y la
// fecha original se conservan; el efecto sobre stock lo maneja el caso de uso.
func (r *MovimientoRepo) Update(m *entity.Movimiento) error {
	query := `
		UPDATE movimientos SET producto_id = $2, ubicacion_id = $3, ubicacion_destino_id = $4,
			colectivo_id = $5, tipo = $6, cantidad = $7, referencia = $8, observaciones = $9,
			lote = $10, fecha_vencimiento = $11, usuario_id = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.UbicacionID, m.UbicacionDestinoID, m.ColectivoID, m.Tipo,
		m.Cantidad, m.Referencia, m.Observaciones, m.Lote, m.FechaVencimiento, m.UsuarioID,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento del libro.
func (r *MovimientoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista movimientos con filtros y paginación, del más reciente al más viejo.
func (r *MovimientoRepo) List(filtro repository.MovimientoFiltro, limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.ProductoID != "" {
		query += fmt.Sprintf(" AND producto_id = $%d", i)
		args = append(args, filtro.ProductoID)
		i++
	}
	if filtro.UbicacionID != "" {
		query += fmt.Sprintf(" AND (ubicacion_id = $%d OR ubicacion_destino_id = $%d)", i, i)
		args = append(args, filtro.UbicacionID)
		i++
	}
	if filtro.ColectivoID != "" {
		query += fmt.Sprintf(" AND colectivo_id = $%d", i)
		args = append(args, filtro.ColectivoID)
		i++
	}
	if filtro.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", i)
		args = append(args, filtro.Tipo)
		i++
	}
	if filtro.Desde != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", i)
		args = append(args, *filtro.Desde)
		i++
	}
	if filtro.Hasta != nil {
		query += fmt.Sprintf(" AND fecha < $%d", i)
		args = append(args, *filtro.Hasta)
		i++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListTodos devuelve el historial completo en orden de fecha ascendente.
// Lo usa la reconciliación para reconstruir el stock desde cero.
func (r *MovimientoRepo) ListTodos() ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos ORDER BY fecha ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list todos movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
