package entity

import (
	"strings"
	"time"
)

// Tipos de ubicación física.
const (
	UbicacionTipoDEPOSITO  = "DEPOSITO"
	UbicacionTipoUBICACION = "UBICACION"
	UbicacionTipoZONA      = "ZONA"
	UbicacionTipoOTRO      = "OTRO"
)

// Ubicacion representa un punto físico de almacenamiento (depósito, estantería,
// zona o la propia unidad). Mantiene `Codigo` único para búsqueda/etiquetado y
// una jerarquía simple vía PadreID.
type Ubicacion struct {
	ID                    string
	Codigo                string // único, ej: DP-A01-M01-N01-P01
	Nombre                string
	Tipo                  string // DEPOSITO, UBICACION, ZONA, OTRO
	PadreID               *string
	PermiteTransferencias bool
	Referencia            string
	Descripcion           string
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Normalizar normaliza el código en mayúsculas.
func (u *Ubicacion) Normalizar() {
	u.Codigo = strings.ToUpper(strings.TrimSpace(u.Codigo))
	u.Referencia = strings.TrimSpace(u.Referencia)
}
