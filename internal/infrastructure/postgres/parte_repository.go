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

var _ repository.ParteRepository = (*ParteRepo)(nil)

// ParteRepo implementación de ParteRepository sobre PostgreSQL (usable con pool o tx).
type ParteRepo struct {
	q Querier
}

// NewParteRepository construye el adaptador de partes diarios. Pasar pool o tx (Querier).
func NewParteRepository(q Querier) *ParteRepo {
	return &ParteRepo{q: q}
}

const parteColumns = `id, colectivo_id, fecha_evento, reportado_por, tipo, severidad, estado,
		odometro_km, accion_mantenimiento, km_mantenimiento, matafuego_vto_nuevo,
		auxilio_inicio, auxilio_fin, descripcion, observaciones, created_at`

func scanParte(row pgx.Row) (*entity.ParteDiario, error) {
	var p entity.ParteDiario
	err := row.Scan(
		&p.ID, &p.ColectivoID, &p.FechaEvento, &p.ReportadoPor, &p.Tipo, &p.Severidad, &p.Estado,
		&p.OdometroKm, &p.AccionMantenimiento, &p.KmMantenimiento, &p.MatafuegoVtoNuevo,
		&p.AuxilioInicio, &p.AuxilioFin, &p.Descripcion, &p.Observaciones, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un parte diario.
func (r *ParteRepo) Create(p *entity.ParteDiario) error {
	query := `
		INSERT INTO partes_diarios (id, colectivo_id, fecha_evento, reportado_por, tipo, severidad,
			estado, odometro_km, accion_mantenimiento, km_mantenimiento, matafuego_vto_nuevo,
			auxilio_inicio, auxilio_fin, descripcion, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ColectivoID, p.FechaEvento, p.ReportadoPor, p.Tipo, p.Severidad, p.Estado,
		p.OdometroKm, p.AccionMantenimiento, p.KmMantenimiento, p.MatafuegoVtoNuevo,
		p.AuxilioInicio, p.AuxilioFin, p.Descripcion, p.Observaciones, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert parte: %w", err)
	}
	return nil
}

// GetByID obtiene un parte por ID.
func (r *ParteRepo) GetByID(id string) (*entity.ParteDiario, error) {
	query := `SELECT ` + parteColumns + ` FROM partes_diarios WHERE id = $1`
	p, err := scanParte(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parte: %w", err)
	}
	return p, nil
}

// Update actualiza un parte existente.
func (r *ParteRepo) Update(p *entity.ParteDiario) error {
	query := `
		UPDATE partes_diarios SET colectivo_id = $2, fecha_evento = $3, tipo = $4, severidad = $5,
			estado = $6, odometro_km = $7, accion_mantenimiento = $8, km_mantenimiento = $9,
			matafuego_vto_nuevo = $10, auxilio_inicio = $11, auxilio_fin = $12,
			descripcion = $13, observaciones = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.ColectivoID, p.FechaEvento, p.Tipo, p.Severidad, p.Estado,
		p.OdometroKm, p.AccionMantenimiento, p.KmMantenimiento, p.MatafuegoVtoNuevo,
		p.AuxilioInicio, p.AuxilioFin, p.Descripcion, p.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update parte: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista partes con filtros y paginación, del más reciente al más viejo.
func (r *ParteRepo) List(filtro repository.ParteFiltro, limit, offset int) ([]*entity.ParteDiario, error) {
	query := `SELECT ` + parteColumns + ` FROM partes_diarios WHERE 1=1`
	args := []any{}
	i := 1
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
	if filtro.Estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", i)
		args = append(args, filtro.Estado)
		i++
	}
	if filtro.Severidad != "" {
		query += fmt.Sprintf(" AND severidad = $%d", i)
		args = append(args, filtro.Severidad)
		i++
	}
	if filtro.Desde != nil {
		query += fmt.Sprintf(" AND fecha_evento >= $%d", i)
		args = append(args, *filtro.Desde)
		i++
	}
	if filtro.Hasta != nil {
		query += fmt.Sprintf(" AND fecha_evento < $%d", i)
		args = append(args, *filtro.Hasta)
		i++
	}
	query += fmt.Sprintf(" ORDER BY fecha_evento DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ParteDiario
	for rows.Next() {
		p, err := scanParte(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parte: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un parte por ID.
func (r *ParteRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM partes_diarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parte: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
