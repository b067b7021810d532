package flota

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// FilaPlan fila del plan del día con los datos de la unidad y el chofer ya
// resueltos (lo que imprime el diagramador).
type FilaPlan struct {
	Hora      string
	Interno   int
	Dominio   string
	Recorrido string
	Seccion   string
	Chofer    string
	Regreso   string
	Estado    string
	Nota      string
}

// PlanPDFGenerator genera el PDF del plan del día para imprimir.
type PlanPDFGenerator interface {
	GenerarPlanPDF(dia time.Time, filas []FilaPlan) ([]byte, error)
}

// SalidaUseCase maneja el diagrama de salidas: CRUD, resolución del día a
// mostrar, vista dual hoy/mañana, copia del día anterior y plan imprimible.
type SalidaUseCase struct {
	salidaRepo    repository.SalidaRepository
	colectivoRepo repository.ColectivoRepository
	choferRepo    repository.ChoferRepository
	resolutor     *ResolutorDia
	pdf           PlanPDFGenerator
	loc           *time.Location
}

// NewSalidaUseCase construye el caso de uso.
func NewSalidaUseCase(
	salidaRepo repository.SalidaRepository,
	colectivoRepo repository.ColectivoRepository,
	choferRepo repository.ChoferRepository,
	loc *time.Location,
	pdf PlanPDFGenerator,
) *SalidaUseCase {
	return &SalidaUseCase{
		salidaRepo:    salidaRepo,
		colectivoRepo: colectivoRepo,
		choferRepo:    choferRepo,
		resolutor:     NewResolutorDia(loc, salidaRepo),
		pdf:           pdf,
		loc:           loc,
	}
}

// SalidaInputDTO entrada para crear o editar una salida programada.
type SalidaInputDTO struct {
	ColectivoID      string
	ChoferID         string
	SalidaProgramada time.Time
	Regreso          *time.Time
	Recorrido        string
	Seccion          string
	Tipo             string
	Estado           string
	Nota             string
}

func (uc *SalidaUseCase) validar(in SalidaInputDTO) error {
	if in.ColectivoID == "" || in.SalidaProgramada.IsZero() {
		return domain.ErrInvalidInput
	}
	col, err := uc.colectivoRepo.GetByID(in.ColectivoID)
	if err != nil {
		return err
	}
	if col == nil {
		return domain.ErrNotFound
	}
	if in.ChoferID != "" {
		ch, err := uc.choferRepo.GetByID(in.ChoferID)
		if err != nil {
			return err
		}
		if ch == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Crear agrega una salida al diagrama.
func (uc *SalidaUseCase) Crear(_ context.Context, in SalidaInputDTO) (*entity.Salida, error) {
	if err := uc.validar(in); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Salida{
		ID:               uuid.New().String(),
		ColectivoID:      in.ColectivoID,
		SalidaProgramada: in.SalidaProgramada,
		Regreso:          in.Regreso,
		Recorrido:        in.Recorrido,
		Seccion:          in.Seccion,
		Tipo:             in.Tipo,
		Estado:           in.Estado,
		Nota:             in.Nota,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if s.Estado == "" {
		s.Estado = entity.SalidaPROGRAMADA
	}
	if in.ChoferID != "" {
		ch := in.ChoferID
		s.ChoferID = &ch
	}
	if err := uc.salidaRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Actualizar edita una salida existente.
func (uc *SalidaUseCase) Actualizar(_ context.Context, id string, in SalidaInputDTO) (*entity.Salida, error) {
	if err := uc.validar(in); err != nil {
		return nil, err
	}
	s, err := uc.salidaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.ColectivoID = in.ColectivoID
	s.SalidaProgramada = in.SalidaProgramada
	s.Regreso = in.Regreso
	s.Recorrido = in.Recorrido
	s.Seccion = in.Seccion
	s.Tipo = in.Tipo
	if in.Estado != "" {
		s.Estado = in.Estado
	}
	s.Nota = in.Nota
	s.ChoferID = nil
	if in.ChoferID != "" {
		ch := in.ChoferID
		s.ChoferID = &ch
	}
	s.UpdatedAt = time.Now()
	if err := uc.salidaRepo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Eliminar borra una salida del diagrama.
func (uc *SalidaUseCase) Eliminar(_ context.Context, id string) error {
	s, err := uc.salidaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.salidaRepo.Delete(id)
}

// ListarDia resuelve el día a mostrar (explícito o heurística) y devuelve sus
// salidas ordenadas por horario.
func (uc *SalidaUseCase) ListarDia(now time.Time, explicito *time.Time) (time.Time, []*entity.Salida, error) {
	dia, err := uc.resolutor.Resolver(now, explicito)
	if err != nil {
		return time.Time{}, nil, err
	}
	desde, hasta := uc.resolutor.LimitesDia(dia)
	salidas, err := uc.salidaRepo.ListByRango(desde, hasta)
	if err != nil {
		return time.Time{}, nil, err
	}
	return dia, salidas, nil
}

// Dual devuelve hoy y mañana en paralelo (vista operativa del diagramador).
func (uc *SalidaUseCase) Dual(now time.Time) (map[string][]*entity.Salida, error) {
	hoy := now.In(uc.loc)
	diaHoy, _ := uc.resolutor.LimitesDia(hoy)
	out := make(map[string][]*entity.Salida, 2)

	for _, d := range []struct {
		clave string
		dia   time.Time
	}{
		{"hoy", diaHoy},
		{"manana", diaHoy.AddDate(0, 0, 1)},
	} {
		desde, hasta := uc.resolutor.LimitesDia(d.dia)
		salidas, err := uc.salidaRepo.ListByRango(desde, hasta)
		if err != nil {
			return nil, err
		}
		out[d.clave] = salidas
	}
	return out, nil
}

// CopiarDiaAnterior duplica las salidas del día anterior hacia el día dado.
// Devuelve cuántas se copiaron. Si el día destino ya tiene salidas no copia
// nada, para no duplicar el diagrama por un doble click.
func (uc *SalidaUseCase) CopiarDiaAnterior(_ context.Context, dia time.Time) (int, error) {
	desde, hasta := uc.resolutor.LimitesDia(dia)
	tiene, err := uc.salidaRepo.DiaTieneSalidas(desde, hasta)
	if err != nil {
		return 0, err
	}
	if tiene {
		return 0, domain.ErrConflict
	}

	desdeAyer, hastaAyer := uc.resolutor.LimitesDia(dia.AddDate(0, 0, -1))
	previas, err := uc.salidaRepo.ListByRango(desdeAyer, hastaAyer)
	if err != nil {
		return 0, err
	}

	copiadas := 0
	now := time.Now()
	for _, p := range previas {
		copia := *p
		copia.ID = uuid.New().String()
		copia.SalidaProgramada = p.SalidaProgramada.AddDate(0, 0, 1)
		if p.Regreso != nil {
			r := p.Regreso.AddDate(0, 0, 1)
			copia.Regreso = &r
		}
		copia.Estado = entity.SalidaPROGRAMADA
		copia.CreatedAt = now
		copia.UpdatedAt = now
		if err := uc.salidaRepo.Create(&copia); err != nil {
			return copiadas, err
		}
		copiadas++
	}
	return copiadas, nil
}

// PlanDelDia arma las filas del plan imprimible con interno, dominio y chofer
// resueltos, y genera el PDF.
func (uc *SalidaUseCase) PlanDelDia(now time.Time, explicito *time.Time) (time.Time, []byte, error) {
	dia, salidas, err := uc.ListarDia(now, explicito)
	if err != nil {
		return time.Time{}, nil, err
	}

	filas := make([]FilaPlan, 0, len(salidas))
	for _, s := range salidas {
		fila := FilaPlan{
			Hora:      s.SalidaProgramada.In(uc.loc).Format("15:04"),
			Recorrido: s.Recorrido,
			Seccion:   s.Seccion,
			Estado:    s.Estado,
			Nota:      s.Nota,
		}
		if s.Regreso != nil {
			fila.Regreso = s.Regreso.In(uc.loc).Format("15:04")
		}
		if col, err := uc.colectivoRepo.GetByID(s.ColectivoID); err == nil && col != nil {
			fila.Interno = col.Interno
			fila.Dominio = col.Dominio
		}
		if s.ChoferID != nil {
			if ch, err := uc.choferRepo.GetByID(*s.ChoferID); err == nil && ch != nil {
				fila.Chofer = ch.DisplayName()
			}
		}
		filas = append(filas, fila)
	}

	pdf, err := uc.pdf.GenerarPlanPDF(dia, filas)
	if err != nil {
		return time.Time{}, nil, err
	}
	return dia, pdf, nil
}

// SalidaResuelta salida con interno, dominio y chofer resueltos para el tablero.
type SalidaResuelta struct {
	Salida  *entity.Salida
	Interno int
	Dominio string
	Chofer  string
}

// Resueltas resuelve interno, dominio y chofer de cada salida, cacheando las
// búsquedas por ID: el diagrama suele repetir las mismas unidades.
func (uc *SalidaUseCase) Resueltas(salidas []*entity.Salida) []SalidaResuelta {
	type datosUnidad struct {
		interno int
		dominio string
	}
	unidades := make(map[string]datosUnidad)
	choferes := make(map[string]string)

	out := make([]SalidaResuelta, 0, len(salidas))
	for _, s := range salidas {
		r := SalidaResuelta{Salida: s}
		if d, ok := unidades[s.ColectivoID]; ok {
			r.Interno, r.Dominio = d.interno, d.dominio
		} else if col, err := uc.colectivoRepo.GetByID(s.ColectivoID); err == nil && col != nil {
			r.Interno, r.Dominio = col.Interno, col.Dominio
			unidades[s.ColectivoID] = datosUnidad{col.Interno, col.Dominio}
		}
		if s.ChoferID != nil {
			if nombre, ok := choferes[*s.ChoferID]; ok {
				r.Chofer = nombre
			} else if ch, err := uc.choferRepo.GetByID(*s.ChoferID); err == nil && ch != nil {
				r.Chofer = ch.DisplayName()
				choferes[*s.ChoferID] = r.Chofer
			}
		}
		out = append(out, r)
	}
	return out
}
