package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

// SalidaRepo implementación de SalidaRepository sobre PostgreSQL (usable con pool o tx).
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador del diagrama de salidas. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

const salidaColumns = `id, colectivo_id, chofer_id, salida_programada, regreso, recorrido,
		seccion, tipo, estado, nota, created_at, updated_at`

func scanSalida(row pgx.Row) (*entity.Salida, error) {
	var s entity.Salida
	err := row.Scan(
		&s.ID, &s.ColectivoID, &s.ChoferID, &s.SalidaProgramada, &s.Regreso, &s.Recorrido,
		&s.Seccion, &s.Tipo, &s.Estado, &s.Nota, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una salida programada.
func (r *SalidaRepo) Create(s *entity.Salida) error {
	query := `
		INSERT INTO salidas (id, colectivo_id, chofer_id, salida_programada, regreso, recorrido,
			seccion, tipo, estado, nota, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ColectivoID, s.ChoferID, s.SalidaProgramada, s.Regreso, s.Recorrido,
		s.Seccion, s.Tipo, s.Estado, s.Nota, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID.
func (r *SalidaRepo) GetByID(id string) (*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + ` FROM salidas WHERE id = $1`
	s, err := scanSalida(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salida: %w", err)
	}
	return s, nil
}

// Update actualiza una salida existente.
func (r *SalidaRepo) Update(s *entity.Salida) error {
	query := `
		UPDATE salidas SET colectivo_id = $2, chofer_id = $3, salida_programada = $4, regreso = $5,
			recorrido = $6, seccion = $7, tipo = $8, estado = $9, nota = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.ColectivoID, s.ChoferID, s.SalidaProgramada, s.Regreso,
		s.Recorrido, s.Seccion, s.Tipo, s.Estado, s.Nota, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update salida: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una salida por ID.
func (r *SalidaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM salidas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete salida: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByRango lista las salidas con salida programada en [desde, hasta),
// ordenadas por hora de salida.
func (r *SalidaRepo) ListByRango(desde, hasta time.Time) ([]*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + `
		FROM salidas
		WHERE salida_programada >= $1 AND salida_programada < $2
		ORDER BY salida_programada`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salida
	for rows.Next() {
		s, err := scanSalida(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DiaTieneSalidas indica si existe al menos una salida en [desde, hasta).
func (r *SalidaRepo) DiaTieneSalidas(desde, hasta time.Time) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM salidas WHERE salida_programada >= $1 AND salida_programada < $2)`,
		desde, hasta,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("dia tiene salidas: %w", err)
	}
	return existe, nil
}

// UltimaSalida devuelve la fecha de la salida más reciente de todo el
// diagrama, o nil si no hay ninguna.
func (r *SalidaRepo) UltimaSalida() (*time.Time, error) {
	var t *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT MAX(salida_programada) FROM salidas`,
	).Scan(&t)
	if err != nil {
		return nil, fmt.Errorf("ultima salida: %w", err)
	}
	return t, nil
}
