package entity

import "time"

// Roles del sistema. Son los perfiles de la operación real: gerencia,
// diagramación, pañol, taller, choferes y administración. GERENCIA siempre
// cuenta como cualquier otro rol.
const (
	RolGerencia       = "GERENCIA"
	RolDiagramador    = "DIAGRAMADOR"
	RolPanol          = "PANOL"
	RolTaller         = "TALLER"
	RolChofer         = "CHOFER"
	RolAdministracion = "ADMINISTRACION"
)

// Estados de usuario.
const (
	UsuarioActivo     = "active"
	UsuarioInactivo   = "inactive"
	UsuarioSuspendido = "suspended"
)

// Usuario representa un usuario del sistema con exactamente un rol.
type Usuario struct {
	ID           string
	Username     string // único
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Nombre       string
	Rol          string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolValido indica si el rol es uno de los definidos.
func RolValido(rol string) bool {
	switch rol {
	case RolGerencia, RolDiagramador, RolPanol, RolTaller, RolChofer, RolAdministracion:
		return true
	}
	return false
}
