package flota_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

func ptrInt(v int) *int              { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func buscarAlerta(alertas []flota.AlertaColectivo, tipo string) *flota.AlertaColectivo {
	for i := range alertas {
		if alertas[i].Tipo == tipo {
			return &alertas[i]
		}
	}
	return nil
}

func TestAlertas_SinDatosNoHayAlertas(t *testing.T) {
	alertas := flota.AlertasDeColectivo(&entity.Colectivo{Interno: 12}, time.Now())
	assert.Empty(t, alertas, "campos sin cargar no generan ruido")
}

func TestAlertas_RevisionTecnicaVencida(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c := &entity.Colectivo{
		RevisionTecnicaVto: ptrTime(hoy.AddDate(0, 0, -15)),
	}

	a := buscarAlerta(flota.AlertasDeColectivo(c, hoy), "REVISION_TECNICA")
	require.NotNil(t, a)
	assert.Equal(t, flota.NivelVencido, a.Nivel)
	require.NotNil(t, a.DiasResta)
	assert.Equal(t, -15, *a.DiasResta)
}

func TestAlertas_MatafuegoPorVencer(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c := &entity.Colectivo{
		MatafuegoVto: ptrTime(hoy.AddDate(0, 0, 20)),
	}

	a := buscarAlerta(flota.AlertasDeColectivo(c, hoy), "MATAFUEGO")
	require.NotNil(t, a)
	assert.Equal(t, flota.NivelPorVencer, a.Nivel, "a 20 días entra en la ventana de aviso de 30")
	assert.Equal(t, 20, *a.DiasResta)
}

func TestAlertas_VencimientoLejanoEsOK(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c := &entity.Colectivo{
		RevisionTecnicaVto: ptrTime(hoy.AddDate(0, 6, 0)),
	}

	a := buscarAlerta(flota.AlertasDeColectivo(c, hoy), "REVISION_TECNICA")
	require.NotNil(t, a)
	assert.Equal(t, flota.NivelOK, a.Nivel)
}

func TestAlertas_CambioDeAceitePorKm(t *testing.T) {
	c := &entity.Colectivo{
		OdometroKm:           ptrInt(149500),
		AceiteUltimoCambioKm: ptrInt(140000),
		AceiteIntervaloKm:    ptrInt(10000),
	}

	a := buscarAlerta(flota.AlertasDeColectivo(c, time.Now()), "ACEITE")
	require.NotNil(t, a)
	assert.Equal(t, flota.NivelPorVencer, a.Nivel, "restan 500 km, por debajo del aviso de 1000")
	require.NotNil(t, a.KmResta)
	assert.Equal(t, 500, *a.KmResta)
}

func TestAlertas_FiltrosPasadosDeKm(t *testing.T) {
	c := &entity.Colectivo{
		OdometroKm:            ptrInt(152000),
		FiltrosUltimoCambioKm: ptrInt(140000),
		FiltrosIntervaloKm:    ptrInt(10000),
	}

	a := buscarAlerta(flota.AlertasDeColectivo(c, time.Now()), "FILTROS")
	require.NotNil(t, a)
	assert.Equal(t, flota.NivelVencido, a.Nivel)
	assert.Equal(t, -2000, *a.KmResta)
}

func TestAlertas_IntervaloEnCeroNoAlerta(t *testing.T) {
	c := &entity.Colectivo{
		OdometroKm:           ptrInt(150000),
		AceiteUltimoCambioKm: ptrInt(140000),
		AceiteIntervaloKm:    ptrInt(0),
	}
	assert.Empty(t, flota.AlertasDeColectivo(c, time.Now()))
}
