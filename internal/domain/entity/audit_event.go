package entity

import "time"

// Acciones de auditoría. view/create/update/delete se derivan del método
// HTTP; login lo registra el handler de auth ante una sesión exitosa.
const (
	AuditView   = "view"
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditLogin  = "login"
)

// AuditEvent registra una acción a nivel request/response.
//
// Diseño:
//   - Snapshot de username (por si el usuario cambia o se elimina)
//   - Campos cortos para filtros rápidos
//   - Extra: datos opcionales (ej: querystring relevante)
type AuditEvent struct {
	ID         string
	CreatedAt  time.Time
	UsuarioID  *string
	Username   string
	Method     string
	Path       string
	ViewName   string // nombre de la ruta resuelta
	StatusCode int
	DurationMs int
	IP         string
	UserAgent  string
	AppArea    string // inventario/flota/usuarios/...
	Action     string // view/create/update/delete/login
	Extra      map[string]string
}
