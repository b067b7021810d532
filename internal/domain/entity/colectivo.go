package entity

import (
	"strings"
	"time"
)

// Estados operativos de una unidad.
const (
	ColectivoACTIVO = "ACTIVO"
	ColectivoTALLER = "TALLER"
	ColectivoBAJA   = "BAJA"
)

// Tipos de servicio.
const (
	ServicioMediaDistancia = "MEDIA_DISTANCIA"
	ServicioUrbano         = "URBANO"
	ServicioInterurbano    = "INTERURBANO"
)

// Colectivo representa una unidad de la flota. Los vencimientos (revisión
// técnica, matafuego) y los intervalos por km (aceite, filtros) alimentan las
// alertas de mantenimiento; no hay más lógica que resta de fechas y km.
type Colectivo struct {
	ID           string
	Interno      int    // número interno, único (identificador operativo)
	Dominio      string // patente, único, en mayúsculas
	AnioModelo   int
	Marca        string
	Modelo       string
	NumeroChasis *string // VIN; puede cargarse después, único cuando existe

	RevisionTecnicaVto  *time.Time
	MatafuegoVto        *time.Time
	MatafuegoUltControl *time.Time

	OdometroKm    *int
	OdometroFecha *time.Time

	AceiteIntervaloKm       *int
	AceiteUltimoCambioKm    *int
	AceiteUltimoCambioFecha *time.Time

	FiltrosIntervaloKm       *int
	FiltrosUltimoCambioKm    *int
	FiltrosUltimoCambioFecha *time.Time

	TipoServicio  string
	Jurisdiccion  string
	Estado        string
	Observaciones string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalizar evita dominios con minúsculas/espacios y chasis vacío que choque
// por unicidad ("" vs NULL).
func (c *Colectivo) Normalizar() {
	c.Dominio = strings.ToUpper(strings.TrimSpace(c.Dominio))
	if c.NumeroChasis != nil {
		v := strings.ToUpper(strings.TrimSpace(*c.NumeroChasis))
		if v == "" {
			c.NumeroChasis = nil
		} else {
			c.NumeroChasis = &v
		}
	}
}
