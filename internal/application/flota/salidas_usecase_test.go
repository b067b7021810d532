package flota_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del diagrama
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalidaRepo struct {
	salidas map[string]*entity.Salida
}

func newFakeSalidaRepo() *fakeSalidaRepo {
	return &fakeSalidaRepo{salidas: make(map[string]*entity.Salida)}
}

func (r *fakeSalidaRepo) Create(s *entity.Salida) error {
	copia := *s
	r.salidas[s.ID] = &copia
	return nil
}

func (r *fakeSalidaRepo) GetByID(id string) (*entity.Salida, error) {
	if s, ok := r.salidas[id]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeSalidaRepo) Update(s *entity.Salida) error {
	if _, ok := r.salidas[s.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *s
	r.salidas[s.ID] = &copia
	return nil
}

func (r *fakeSalidaRepo) Delete(id string) error {
	delete(r.salidas, id)
	return nil
}

func (r *fakeSalidaRepo) ListByRango(desde, hasta time.Time) ([]*entity.Salida, error) {
	var out []*entity.Salida
	for _, s := range r.salidas {
		if !s.SalidaProgramada.Before(desde) && s.SalidaProgramada.Before(hasta) {
			copia := *s
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SalidaProgramada.Before(out[j].SalidaProgramada)
	})
	return out, nil
}

func (r *fakeSalidaRepo) DiaTieneSalidas(desde, hasta time.Time) (bool, error) {
	list, _ := r.ListByRango(desde, hasta)
	return len(list) > 0, nil
}

func (r *fakeSalidaRepo) UltimaSalida() (*time.Time, error) {
	var ultima *time.Time
	for _, s := range r.salidas {
		if ultima == nil || s.SalidaProgramada.After(*ultima) {
			f := s.SalidaProgramada
			ultima = &f
		}
	}
	return ultima, nil
}

type fakeFlotaRepo struct {
	colectivos map[string]*entity.Colectivo
}

func (r *fakeFlotaRepo) Create(*entity.Colectivo) error { return nil }
func (r *fakeFlotaRepo) GetByID(id string) (*entity.Colectivo, error) {
	return r.colectivos[id], nil
}
func (r *fakeFlotaRepo) GetByInterno(int) (*entity.Colectivo, error) { return nil, nil }
func (r *fakeFlotaRepo) Update(*entity.Colectivo) error              { return nil }
func (r *fakeFlotaRepo) List(repository.ColectivoFiltro, int, int) ([]*entity.Colectivo, error) {
	return nil, nil
}
func (r *fakeFlotaRepo) Delete(string) error { return nil }

type fakeChoferRepo struct{ choferes map[string]*entity.Chofer }

func (r *fakeChoferRepo) Create(*entity.Chofer) error { return nil }
func (r *fakeChoferRepo) GetByID(id string) (*entity.Chofer, error) {
	return r.choferes[id], nil
}
func (r *fakeChoferRepo) GetByLegajo(string) (*entity.Chofer, error) { return nil, nil }
func (r *fakeChoferRepo) Update(*entity.Chofer) error                { return nil }
func (r *fakeChoferRepo) List(string, *bool, int, int) ([]*entity.Chofer, error) {
	return nil, nil
}
func (r *fakeChoferRepo) Delete(string) error { return nil }

type fakePlanPDF struct {
	dia   time.Time
	filas []flota.FilaPlan
}

func (g *fakePlanPDF) GenerarPlanPDF(dia time.Time, filas []flota.FilaPlan) ([]byte, error) {
	g.dia = dia
	g.filas = filas
	return []byte("%PDF-fake"), nil
}

func nuevoDiagrama() (*flota.SalidaUseCase, *fakeSalidaRepo, *fakePlanPDF) {
	repo := newFakeSalidaRepo()
	pdf := &fakePlanPDF{}
	uc := flota.NewSalidaUseCase(
		repo,
		&fakeFlotaRepo{colectivos: map[string]*entity.Colectivo{
			"col-707": {ID: "col-707", Interno: 707, Dominio: "AB123CD"},
		}},
		&fakeChoferRepo{choferes: map[string]*entity.Chofer{
			"cho-1": {ID: "cho-1", Nombre: "Juan", Apellido: "Pérez"},
		}},
		zonaBA,
		pdf,
	)
	return uc, repo, pdf
}

func salidaInput(t *testing.T, hora string) flota.SalidaInputDTO {
	t.Helper()
	prog, err := time.ParseInLocation("2006-01-02 15:04", hora, zonaBA)
	require.NoError(t, err)
	return flota.SalidaInputDTO{
		ColectivoID:      "col-707",
		ChoferID:         "cho-1",
		SalidaProgramada: prog,
		Recorrido:        "Terminal - Hospital",
		Seccion:          "2",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearSalida_EstadoInicialProgramada(t *testing.T) {
	uc, _, _ := nuevoDiagrama()

	s, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)
	assert.Equal(t, entity.SalidaPROGRAMADA, s.Estado)
	require.NotNil(t, s.ChoferID)
	assert.Equal(t, "cho-1", *s.ChoferID)
}

func TestCrearSalida_ColectivoInexistente_Falla(t *testing.T) {
	uc, _, _ := nuevoDiagrama()

	in := salidaInput(t, "2026-03-10 06:30")
	in.ColectivoID = "col-fantasma"
	_, err := uc.Crear(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearSalida_SinColectivoNiHorario_Falla(t *testing.T) {
	uc, _, _ := nuevoDiagrama()
	_, err := uc.Crear(context.Background(), flota.SalidaInputDTO{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarSalida_QuitarChofer(t *testing.T) {
	uc, _, _ := nuevoDiagrama()
	s, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)

	in := salidaInput(t, "2026-03-10 07:00")
	in.ChoferID = ""
	editada, err := uc.Actualizar(context.Background(), s.ID, in)
	require.NoError(t, err)
	assert.Nil(t, editada.ChoferID, "la edición puede dejar la salida sin chofer asignado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero dual y copia del día anterior
// ──────────────────────────────────────────────────────────────────────────────

func TestDual_SeparaHoyYManana(t *testing.T) {
	uc, _, _ := nuevoDiagrama()
	_, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)
	_, err = uc.Crear(context.Background(), salidaInput(t, "2026-03-11 07:15"))
	require.NoError(t, err)

	now := dia(t, "2026-03-10").Add(9 * time.Hour)
	dias, err := uc.Dual(now)
	require.NoError(t, err)
	assert.Len(t, dias["hoy"], 1)
	assert.Len(t, dias["manana"], 1)
}

func TestCopiarDiaAnterior_DuplicaConFechaCorrida(t *testing.T) {
	uc, repo, _ := nuevoDiagrama()
	s, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)
	s.Estado = entity.SalidaCONFIRMADA
	require.NoError(t, repo.Update(s))

	n, err := uc.CopiarDiaAnterior(context.Background(), dia(t, "2026-03-11"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	desde := dia(t, "2026-03-11")
	copiadas, err := repo.ListByRango(desde, desde.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, copiadas, 1)
	copia := copiadas[0]
	assert.NotEqual(t, s.ID, copia.ID, "la copia es una salida nueva")
	assert.Equal(t, "06:30", copia.SalidaProgramada.In(zonaBA).Format("15:04"),
		"se conserva el horario, corrido un día")
	assert.Equal(t, entity.SalidaPROGRAMADA, copia.Estado,
		"la copia arranca PROGRAMADA aunque la original estuviera confirmada")
}

func TestCopiarDiaAnterior_DestinoConSalidas_Conflicto(t *testing.T) {
	uc, _, _ := nuevoDiagrama()
	_, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)
	_, err = uc.Crear(context.Background(), salidaInput(t, "2026-03-11 08:00"))
	require.NoError(t, err)

	_, err = uc.CopiarDiaAnterior(context.Background(), dia(t, "2026-03-11"))
	assert.ErrorIs(t, err, domain.ErrConflict, "no se pisa un día ya diagramado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución para el tablero y plan PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestResueltas_CompletaInternoDominioYChofer(t *testing.T) {
	uc, _, _ := nuevoDiagrama()
	s, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)

	resueltas := uc.Resueltas([]*entity.Salida{s})
	require.Len(t, resueltas, 1)
	assert.Equal(t, 707, resueltas[0].Interno)
	assert.Equal(t, "AB123CD", resueltas[0].Dominio)
	assert.Equal(t, "Pérez, Juan", resueltas[0].Chofer)
}

func TestPlanDelDia_ArmaLasFilasResueltas(t *testing.T) {
	uc, _, pdf := nuevoDiagrama()
	_, err := uc.Crear(context.Background(), salidaInput(t, "2026-03-10 06:30"))
	require.NoError(t, err)

	explicito := dia(t, "2026-03-10")
	resuelto, contenido, err := uc.PlanDelDia(time.Now(), &explicito)
	require.NoError(t, err)
	assert.True(t, explicito.Equal(resuelto))
	assert.NotEmpty(t, contenido)

	require.Len(t, pdf.filas, 1)
	fila := pdf.filas[0]
	assert.Equal(t, "06:30", fila.Hora)
	assert.Equal(t, 707, fila.Interno)
	assert.Equal(t, "AB123CD", fila.Dominio)
	assert.Equal(t, "Pérez, Juan", fila.Chofer)
	assert.Equal(t, "Terminal - Hospital", fila.Recorrido)
}
