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

var _ repository.UbicacionRepository = (*UbicacionRepo)(nil)

// UbicacionRepo implementación de UbicacionRepository sobre PostgreSQL (usable con pool o tx).
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

const ubicacionColumns = `id, codigo, nombre, tipo, padre_id, permite_transferencias,
		referencia, descripcion, is_active, created_at, updated_at`

func scanUbicacion(row pgx.Row) (*entity.Ubicacion, error) {
	var u entity.Ubicacion
	err := row.Scan(
		&u.ID, &u.Codigo, &u.Nombre, &u.Tipo, &u.PadreID, &u.PermiteTransferencias,
		&u.Referencia, &u.Descripcion, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste una nueva ubicación.
func (r *UbicacionRepo) Create(u *entity.Ubicacion) error {
	query := `
		INSERT INTO ubicaciones (id, codigo, nombre, tipo, padre_id, permite_transferencias,
			referencia, descripcion, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Codigo, u.Nombre, u.Tipo, u.PadreID, u.PermiteTransferencias,
		u.Referencia, u.Descripcion, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *UbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	query := `SELECT ` + ubicacionColumns + ` FROM ubicaciones WHERE id = $1`
	u, err := scanUbicacion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion: %w", err)
	}
	return u, nil
}

// GetByCodigo obtiene una ubicación por código.
func (r *UbicacionRepo) GetByCodigo(codigo string) (*entity.Ubicacion, error) {
	query := `SELECT ` + ubicacionColumns + ` FROM ubicaciones WHERE codigo = $1`
	u, err := scanUbicacion(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion by codigo: %w", err)
	}
	return u, nil
}

// Update actualiza una ubicación existente.
func (r *UbicacionRepo) Update(u *entity.Ubicacion) error {
	query := `
		UPDATE ubicaciones SET nombre = $2, tipo = $3, padre_id = $4, permite_transferencias = $5,
			referencia = $6, descripcion = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Tipo, u.PadreID, u.PermiteTransferencias,
		u.Referencia, u.Descripcion, u.IsActive, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ubicacion: %w", err)
	}
	return nil
}

// List lista ubicaciones con filtros y paginación.
func (r *UbicacionRepo) List(filtro repository.UbicacionFiltro, limit, offset int) ([]*entity.Ubicacion, error) {
	query := `SELECT ` + ubicacionColumns + ` FROM ubicaciones WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.Q != "" {
		query += fmt.Sprintf(" AND (codigo ILIKE $%d OR nombre ILIKE $%d)", i, i)
		args = append(args, "%"+filtro.Q+"%")
		i++
	}
	if filtro.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", i)
		args = append(args, filtro.Tipo)
		i++
	}
	if filtro.Activo != nil {
		query += fmt.Sprintf(" AND is_active = $%d", i)
		args = append(args, *filtro.Activo)
		i++
	}
	query += fmt.Sprintf(" ORDER BY codigo LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ubicacion
	for rows.Next() {
		u, err := scanUbicacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación por ID. Con stock o movimientos la FK lo
// bloquea y se devuelve ErrConflict.
func (r *UbicacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ubicaciones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete ubicacion: %w", err)
	}
	return nil
}
