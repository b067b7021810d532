package usecase

import (
	"time"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// AuditoriaUseCase consulta y mantenimiento del log de auditoría (sólo gerencia).
type AuditoriaUseCase struct {
	repo repository.AuditRepository
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(repo repository.AuditRepository) *AuditoriaUseCase {
	return &AuditoriaUseCase{repo: repo}
}

// List lista eventos de auditoría con filtros y paginación.
func (uc *AuditoriaUseCase) List(filtro repository.AuditFiltro, page dto.PageRequest) (*dto.AuditListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditEventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toAuditResponse(e))
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Purge elimina eventos con más de dias días de antigüedad. Mínimo 30 días
// para evitar purgas accidentales de historial reciente.
func (uc *AuditoriaUseCase) Purge(dias int) (*dto.PurgeAuditResponse, error) {
	if dias < 30 {
		return nil, domain.ErrInvalidInput
	}
	corte := time.Now().AddDate(0, 0, -dias)
	n, err := uc.repo.PurgeOlderThan(corte)
	if err != nil {
		return nil, err
	}
	return &dto.PurgeAuditResponse{
		Eliminados: n,
		AntesDe:    corte.Format("2006-01-02"),
	}, nil
}

func toAuditResponse(e *entity.AuditEvent) dto.AuditEventResponse {
	return dto.AuditEventResponse{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt,
		UsuarioID:  e.UsuarioID,
		Username:   e.Username,
		Method:     e.Method,
		Path:       e.Path,
		ViewName:   e.ViewName,
		StatusCode: e.StatusCode,
		DurationMs: e.DurationMs,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		AppArea:    e.AppArea,
		Action:     e.Action,
		Extra:      e.Extra,
	}
}
