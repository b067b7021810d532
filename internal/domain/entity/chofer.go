package entity

import (
	"strings"
	"time"
)

// Chofer representa un conductor de la empresa.
type Chofer struct {
	ID          string
	Legajo      string // único
	Nombre      string
	Apellido    string
	DNI         string
	Telefono    string
	LicenciaVto *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName devuelve "Apellido, Nombre" para listados.
func (c *Chofer) DisplayName() string {
	return strings.TrimSpace(c.Apellido + ", " + c.Nombre)
}
