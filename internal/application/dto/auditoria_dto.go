package dto

import "time"

// AuditEventResponse representación de un evento de auditoría.
type AuditEventResponse struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	UsuarioID  *string           `json:"usuario_id,omitempty"`
	Username   string            `json:"username,omitempty"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	ViewName   string            `json:"view_name,omitempty"`
	StatusCode int               `json:"status_code"`
	DurationMs int               `json:"duration_ms"`
	IP         string            `json:"ip,omitempty"`
	UserAgent  string            `json:"user_agent,omitempty"`
	AppArea    string            `json:"app_area,omitempty"`
	Action     string            `json:"action"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// AuditListResponse página de eventos de auditoría.
type AuditListResponse struct {
	Items []AuditEventResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// PurgeAuditResponse resultado de la purga de eventos viejos.
type PurgeAuditResponse struct {
	Eliminados int64  `json:"eliminados"`
	AntesDe    string `json:"antes_de"` // fecha de corte, YYYY-MM-DD
}
