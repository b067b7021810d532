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

var _ repository.ChoferRepository = (*ChoferRepo)(nil)

// ChoferRepo implementación de ChoferRepository sobre PostgreSQL (usable con pool o tx).
type ChoferRepo struct {
	q Querier
}

// NewChoferRepository construye el adaptador de choferes. Pasar pool o tx (Querier).
func NewChoferRepository(q Querier) *ChoferRepo {
	return &ChoferRepo{q: q}
}

const choferColumns = `id, legajo, nombre, apellido, dni, telefono, licencia_vto,
		is_active, created_at, updated_at`

func scanChofer(row pgx.Row) (*entity.Chofer, error) {
	var c entity.Chofer
	err := row.Scan(
		&c.ID, &c.Legajo, &c.Nombre, &c.Apellido, &c.DNI, &c.Telefono, &c.LicenciaVto,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo chofer.
func (r *ChoferRepo) Create(c *entity.Chofer) error {
	query := `
		INSERT INTO choferes (id, legajo, nombre, apellido, dni, telefono, licencia_vto,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Legajo, c.Nombre, c.Apellido, c.DNI, c.Telefono, c.LicenciaVto,
		c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chofer: %w", err)
	}
	return nil
}

// GetByID obtiene un chofer por ID.
func (r *ChoferRepo) GetByID(id string) (*entity.Chofer, error) {
	query := `SELECT ` + choferColumns + ` FROM choferes WHERE id = $1`
	c, err := scanChofer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chofer: %w", err)
	}
	return c, nil
}

// GetByLegajo obtiene un chofer por legajo.
func (r *ChoferRepo) GetByLegajo(legajo string) (*entity.Chofer, error) {
	query := `SELECT ` + choferColumns + ` FROM choferes WHERE legajo = $1`
	c, err := scanChofer(r.q.QueryRow(context.Background(), query, legajo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chofer by legajo: %w", err)
	}
	return c, nil
}

// Update actualiza un chofer existente.
func (r *ChoferRepo) Update(c *entity.Chofer) error {
	query := `
		UPDATE choferes SET nombre = $2, apellido = $3, dni = $4, telefono = $5,
			licencia_vto = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Apellido, c.DNI, c.Telefono, c.LicenciaVto, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chofer: %w", err)
	}
	return nil
}

// List lista choferes, ordenados por apellido y nombre.
func (r *ChoferRepo) List(q string, activo *bool, limit, offset int) ([]*entity.Chofer, error) {
	query := `SELECT ` + choferColumns + ` FROM choferes WHERE 1=1`
	args := []any{}
	i := 1
	if q != "" {
		query += fmt.Sprintf(" AND (legajo ILIKE $%d OR nombre ILIKE $%d OR apellido ILIKE $%d)", i, i, i)
		args = append(args, "%"+q+"%")
		i++
	}
	if activo != nil {
		query += fmt.Sprintf(" AND is_active = $%d", i)
		args = append(args, *activo)
		i++
	}
	query += fmt.Sprintf(" ORDER BY apellido, nombre LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list choferes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chofer
	for rows.Next() {
		c, err := scanChofer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chofer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un chofer. Con salidas asignadas la FK lo bloquea y se
// devuelve ErrConflict.
func (r *ChoferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM choferes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete chofer: %w", err)
	}
	return nil
}
