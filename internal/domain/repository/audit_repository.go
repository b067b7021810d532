package repository

import (
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// AuditFiltro filtros de consulta del log de auditoría.
type AuditFiltro struct {
	Username string
	AppArea  string
	Action   string
	Desde    *time.Time
	Hasta    *time.Time
}

// AuditRepository define el puerto de persistencia de eventos de auditoría.
type AuditRepository interface {
	Create(e *entity.AuditEvent) error
	List(filtro AuditFiltro, limit, offset int) ([]*entity.AuditEvent, error)
	// PurgeOlderThan elimina eventos anteriores a la fecha dada (mantenimiento).
	PurgeOlderThan(t time.Time) (int64, error)
}
