package flota

import (
	"fmt"
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// Niveles de alerta de mantenimiento.
const (
	NivelOK        = "OK"
	NivelPorVencer = "POR_VENCER"
	NivelVencido   = "VENCIDO"
)

// Umbrales de aviso: 30 días para vencimientos, 1000 km para servicios.
const (
	diasAviso = 30
	kmAviso   = 1000
)

// AlertaColectivo badge de "días/km restantes" de una unidad.
type AlertaColectivo struct {
	Tipo      string `json:"tipo"` // REVISION_TECNICA, MATAFUEGO, ACEITE, FILTROS
	Detalle   string `json:"detalle"`
	DiasResta *int   `json:"dias_resta,omitempty"`
	KmResta   *int   `json:"km_resta,omitempty"`
	Nivel     string `json:"nivel"`
}

// AlertasDeColectivo calcula los badges de vencimientos y servicios por km de
// una unidad. Es pura resta de fechas y kilómetros; los campos sin datos no
// generan alerta.
func AlertasDeColectivo(c *entity.Colectivo, hoy time.Time) []AlertaColectivo {
	var alertas []AlertaColectivo

	if a := alertaVencimiento("REVISION_TECNICA", "revisión técnica", c.RevisionTecnicaVto, hoy); a != nil {
		alertas = append(alertas, *a)
	}
	if a := alertaVencimiento("MATAFUEGO", "matafuego", c.MatafuegoVto, hoy); a != nil {
		alertas = append(alertas, *a)
	}
	if a := alertaServicioKm("ACEITE", "cambio de aceite", c.OdometroKm, c.AceiteUltimoCambioKm, c.AceiteIntervaloKm); a != nil {
		alertas = append(alertas, *a)
	}
	if a := alertaServicioKm("FILTROS", "cambio de filtros", c.OdometroKm, c.FiltrosUltimoCambioKm, c.FiltrosIntervaloKm); a != nil {
		alertas = append(alertas, *a)
	}
	return alertas
}

func alertaVencimiento(tipo, nombre string, vto *time.Time, hoy time.Time) *AlertaColectivo {
	if vto == nil {
		return nil
	}
	dias := int(vto.Sub(hoy).Hours() / 24)
	nivel := NivelOK
	switch {
	case dias < 0:
		nivel = NivelVencido
	case dias <= diasAviso:
		nivel = NivelPorVencer
	}
	return &AlertaColectivo{
		Tipo:      tipo,
		Detalle:   fmt.Sprintf("vencimiento de %s: %s", nombre, vto.Format("2006-01-02")),
		DiasResta: &dias,
		Nivel:     nivel,
	}
}

func alertaServicioKm(tipo, nombre string, odometro, ultimoCambio, intervalo *int) *AlertaColectivo {
	if odometro == nil || ultimoCambio == nil || intervalo == nil || *intervalo <= 0 {
		return nil
	}
	resta := (*ultimoCambio + *intervalo) - *odometro
	nivel := NivelOK
	switch {
	case resta <= 0:
		nivel = NivelVencido
	case resta <= kmAviso:
		nivel = NivelPorVencer
	}
	return &AlertaColectivo{
		Tipo:    tipo,
		Detalle: fmt.Sprintf("%s cada %d km (último en %d km)", nombre, *intervalo, *ultimoCambio),
		KmResta: &resta,
		Nivel:   nivel,
	}
}
