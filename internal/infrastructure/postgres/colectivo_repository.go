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

var _ repository.ColectivoRepository = (*ColectivoRepo)(nil)

// ColectivoRepo implementación de ColectivoRepository sobre PostgreSQL (usable con pool o tx).
type ColectivoRepo struct {
	q Querier
}

// NewColectivoRepository construye el adaptador de unidades de flota. Pasar pool o tx (Querier).
func NewColectivoRepository(q Querier) *ColectivoRepo {
	return &ColectivoRepo{q: q}
}

const colectivoColumns = `id, interno, dominio, anio_modelo, marca, modelo, numero_chasis,
		revision_tecnica_vto, matafuego_vto, matafuego_ult_control,
		odometro_km, odometro_fecha,
		aceite_intervalo_km, aceite_ultimo_cambio_km, aceite_ultimo_cambio_fecha,
		filtros_intervalo_km, filtros_ultimo_cambio_km, filtros_ultimo_cambio_fecha,
		tipo_servicio, jurisdiccion, estado, observaciones, is_active, created_at, updated_at`

func scanColectivo(row pgx.Row) (*entity.Colectivo, error) {
	var c entity.Colectivo
	err := row.Scan(
		&c.ID, &c.Interno, &c.Dominio, &c.AnioModelo, &c.Marca, &c.Modelo, &c.NumeroChasis,
		&c.RevisionTecnicaVto, &c.MatafuegoVto, &c.MatafuegoUltControl,
		&c.OdometroKm, &c.OdometroFecha,
		&c.AceiteIntervaloKm, &c.AceiteUltimoCambioKm, &c.AceiteUltimoCambioFecha,
		&c.FiltrosIntervaloKm, &c.FiltrosUltimoCambioKm, &c.FiltrosUltimoCambioFecha,
		&c.TipoServicio, &c.Jurisdiccion, &c.Estado, &c.Observaciones, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva unidad.
func (r *ColectivoRepo) Create(c *entity.Colectivo) error {
	query := `
		INSERT INTO colectivos (id, interno, dominio, anio_modelo, marca, modelo, numero_chasis,
			revision_tecnica_vto, matafuego_vto, matafuego_ult_control,
			odometro_km, odometro_fecha,
			aceite_intervalo_km, aceite_ultimo_cambio_km, aceite_ultimo_cambio_fecha,
			filtros_intervalo_km, filtros_ultimo_cambio_km, filtros_ultimo_cambio_fecha,
			tipo_servicio, jurisdiccion, estado, observaciones, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Interno, c.Dominio, c.AnioModelo, c.Marca, c.Modelo, c.NumeroChasis,
		c.RevisionTecnicaVto, c.MatafuegoVto, c.MatafuegoUltControl,
		c.OdometroKm, c.OdometroFecha,
		c.AceiteIntervaloKm, c.AceiteUltimoCambioKm, c.AceiteUltimoCambioFecha,
		c.FiltrosIntervaloKm, c.FiltrosUltimoCambioKm, c.FiltrosUltimoCambioFecha,
		c.TipoServicio, c.Jurisdiccion, c.Estado, c.Observaciones, c.IsActive,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert colectivo: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *ColectivoRepo) GetByID(id string) (*entity.Colectivo, error) {
	query := `SELECT ` + colectivoColumns + ` FROM colectivos WHERE id = $1`
	c, err := scanColectivo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colectivo: %w", err)
	}
	return c, nil
}

// GetByInterno obtiene una unidad por su número interno.
func (r *ColectivoRepo) GetByInterno(interno int) (*entity.Colectivo, error) {
	query := `SELECT ` + colectivoColumns + ` FROM colectivos WHERE interno = $1`
	c, err := scanColectivo(r.q.QueryRow(context.Background(), query, interno))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colectivo by interno: %w", err)
	}
	return c, nil
}

// Update actualiza una unidad existente.
func (r *ColectivoRepo) Update(c *entity.Colectivo) error {
	query := `
		UPDATE colectivos SET interno = $2, dominio = $3, anio_modelo = $4, marca = $5, modelo = $6,
			numero_chasis = $7, revision_tecnica_vto = $8, matafuego_vto = $9, matafuego_ult_control = $10,
			odometro_km = $11, odometro_fecha = $12,
			aceite_intervalo_km = $13, aceite_ultimo_cambio_km = $14, aceite_ultimo_cambio_fecha = $15,
			filtros_intervalo_km = $16, filtros_ultimo_cambio_km = $17, filtros_ultimo_cambio_fecha = $18,
			tipo_servicio = $19, jurisdiccion = $20, estado = $21, observaciones = $22,
			is_active = $23, updated_at = $24
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Interno, c.Dominio, c.AnioModelo, c.Marca, c.Modelo, c.NumeroChasis,
		c.RevisionTecnicaVto, c.MatafuegoVto, c.MatafuegoUltControl,
		c.OdometroKm, c.OdometroFecha,
		c.AceiteIntervaloKm, c.AceiteUltimoCambioKm, c.AceiteUltimoCambioFecha,
		c.FiltrosIntervaloKm, c.FiltrosUltimoCambioKm, c.FiltrosUltimoCambioFecha,
		c.TipoServicio, c.Jurisdiccion, c.Estado, c.Observaciones, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update colectivo: %w", err)
	}
	return nil
}

// List lista unidades con filtros y paginación, ordenadas por interno.
func (r *ColectivoRepo) List(filtro repository.ColectivoFiltro, limit, offset int) ([]*entity.Colectivo, error) {
	query := `SELECT ` + colectivoColumns + ` FROM colectivos WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.Q != "" {
		query += fmt.Sprintf(" AND (dominio ILIKE $%d OR marca ILIKE $%d OR modelo ILIKE $%d)", i, i, i)
		args = append(args, "%"+filtro.Q+"%")
		i++
	}
	if filtro.Estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", i)
		args = append(args, filtro.Estado)
		i++
	}
	if filtro.Activo != nil {
		query += fmt.Sprintf(" AND is_active = $%d", i)
		args = append(args, *filtro.Activo)
		i++
	}
	query += fmt.Sprintf(" ORDER BY interno LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list colectivos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Colectivo
	for rows.Next() {
		c, err := scanColectivo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan colectivo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una unidad. Con partes o salidas la FK lo bloquea y se
// devuelve ErrConflict.
func (r *ColectivoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM colectivos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete colectivo: %w", err)
	}
	return nil
}
