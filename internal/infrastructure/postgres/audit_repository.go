package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre PostgreSQL (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador del log de auditoría. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste un evento de auditoría. Extra se guarda como JSONB.
func (r *AuditRepo) Create(e *entity.AuditEvent) error {
	query := `
		INSERT INTO audit_events (id, created_at, usuario_id, username, method, path, view_name,
			status_code, duration_ms, ip, user_agent, app_area, action, extra)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.CreatedAt, e.UsuarioID, e.Username, e.Method, e.Path, e.ViewName,
		e.StatusCode, e.DurationMs, e.IP, e.UserAgent, e.AppArea, e.Action, e.Extra,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// List lista eventos con filtros y paginación, del más reciente al más viejo.
func (r *AuditRepo) List(filtro repository.AuditFiltro, limit, offset int) ([]*entity.AuditEvent, error) {
	query := `
		SELECT id, created_at, usuario_id, username, method, path, view_name,
			status_code, duration_ms, ip, user_agent, app_area, action, extra
		FROM audit_events WHERE 1=1`
	args := []any{}
	i := 1
	if filtro.Username != "" {
		query += fmt.Sprintf(" AND username = $%d", i)
		args = append(args, filtro.Username)
		i++
	}
	if filtro.AppArea != "" {
		query += fmt.Sprintf(" AND app_area = $%d", i)
		args = append(args, filtro.AppArea)
		i++
	}
	if filtro.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", i)
		args = append(args, filtro.Action)
		i++
	}
	if filtro.Desde != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", i)
		args = append(args, *filtro.Desde)
		i++
	}
	if filtro.Hasta != nil {
		query += fmt.Sprintf(" AND created_at < $%d", i)
		args = append(args, *filtro.Hasta)
		i++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.UsuarioID, &e.Username, &e.Method, &e.Path,
			&e.ViewName, &e.StatusCode, &e.DurationMs, &e.IP, &e.UserAgent, &e.AppArea,
			&e.Action, &e.Extra); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// PurgeOlderThan elimina eventos anteriores a la fecha dada. Devuelve la
// cantidad eliminada.
func (r *AuditRepo) PurgeOlderThan(t time.Time) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM audit_events WHERE created_at < $1`, t)
	if err != nil {
		return 0, fmt.Errorf("purge audit events: %w", err)
	}
	return cmd.RowsAffected(), nil
}
