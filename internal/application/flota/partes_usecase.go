package flota

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ParteUseCase maneja los partes diarios de taller/choferes.
type ParteUseCase struct {
	parteRepo     repository.ParteRepository
	colectivoRepo repository.ColectivoRepository
}

// NewParteUseCase construye el caso de uso.
func NewParteUseCase(parteRepo repository.ParteRepository, colectivoRepo repository.ColectivoRepository) *ParteUseCase {
	return &ParteUseCase{parteRepo: parteRepo, colectivoRepo: colectivoRepo}
}

// ParteInputDTO entrada para crear o editar un parte diario.
type ParteInputDTO struct {
	ColectivoID         string
	FechaEvento         *time.Time
	ReportadoPor        string
	Tipo                string
	Severidad           string
	Estado              string
	OdometroKm          *int
	AccionMantenimiento string
	KmMantenimiento     *int
	MatafuegoVtoNuevo   *time.Time
	AuxilioInicio       *time.Time
	AuxilioFin          *time.Time
	Descripcion         string
	Observaciones       string
}

// validar reglas cruzadas del parte: mantenimiento exige acción y, para
// aceite/filtros, el km; auxilio exige hora de inicio; siempre hace falta
// alguna descripción.
func (uc *ParteUseCase) validar(in *ParteInputDTO) error {
	if in.ColectivoID == "" {
		return domain.ErrInvalidInput
	}
	switch in.Tipo {
	case entity.ParteCHECKLIST, entity.ParteINCIDENCIA, entity.ParteMANTENIMIENTO, entity.ParteAUXILIO:
	default:
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Descripcion) == "" && strings.TrimSpace(in.Observaciones) == "" {
		return domain.ErrInvalidInput
	}

	if in.Tipo == entity.ParteMANTENIMIENTO {
		if in.AccionMantenimiento == "" {
			return domain.ErrInvalidInput
		}
		if (in.AccionMantenimiento == entity.AccionACEITE || in.AccionMantenimiento == entity.AccionFILTROS) && in.KmMantenimiento == nil {
			return domain.ErrInvalidInput
		}
	} else {
		// Los campos de mantenimiento sólo aplican a ese tipo.
		in.AccionMantenimiento = ""
		in.KmMantenimiento = nil
		in.MatafuegoVtoNuevo = nil
	}

	if in.Tipo == entity.ParteAUXILIO {
		if in.AuxilioInicio == nil {
			return domain.ErrInvalidInput
		}
		if in.AuxilioFin != nil && in.AuxilioFin.Before(*in.AuxilioInicio) {
			return domain.ErrInvalidInput
		}
	} else {
		in.AuxilioInicio = nil
		in.AuxilioFin = nil
	}

	col, err := uc.colectivoRepo.GetByID(in.ColectivoID)
	if err != nil {
		return err
	}
	if col == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Crear registra un parte diario.
func (uc *ParteUseCase) Crear(_ context.Context, in ParteInputDTO) (*entity.ParteDiario, error) {
	if err := uc.validar(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	fecha := now
	if in.FechaEvento != nil {
		fecha = *in.FechaEvento
	}
	p := &entity.ParteDiario{
		ID:                  uuid.New().String(),
		ColectivoID:         in.ColectivoID,
		FechaEvento:         fecha,
		Tipo:                in.Tipo,
		Severidad:           in.Severidad,
		Estado:              in.Estado,
		OdometroKm:          in.OdometroKm,
		AccionMantenimiento: in.AccionMantenimiento,
		KmMantenimiento:     in.KmMantenimiento,
		MatafuegoVtoNuevo:   in.MatafuegoVtoNuevo,
		AuxilioInicio:       in.AuxilioInicio,
		AuxilioFin:          in.AuxilioFin,
		Descripcion:         in.Descripcion,
		Observaciones:       in.Observaciones,
		CreatedAt:           now,
	}
	if p.Severidad == "" {
		p.Severidad = entity.SeveridadMEDIA
	}
	if p.Estado == "" {
		p.Estado = entity.ParteABIERTO
	}
	if in.ReportadoPor != "" {
		usr := in.ReportadoPor
		p.ReportadoPor = &usr
	}
	if err := uc.parteRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Actualizar edita un parte existente.
func (uc *ParteUseCase) Actualizar(_ context.Context, id string, in ParteInputDTO) (*entity.ParteDiario, error) {
	if err := uc.validar(&in); err != nil {
		return nil, err
	}
	p, err := uc.parteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.ColectivoID = in.ColectivoID
	if in.FechaEvento != nil {
		p.FechaEvento = *in.FechaEvento
	}
	p.Tipo = in.Tipo
	if in.Severidad != "" {
		p.Severidad = in.Severidad
	}
	if in.Estado != "" {
		p.Estado = in.Estado
	}
	p.OdometroKm = in.OdometroKm
	p.AccionMantenimiento = in.AccionMantenimiento
	p.KmMantenimiento = in.KmMantenimiento
	p.MatafuegoVtoNuevo = in.MatafuegoVtoNuevo
	p.AuxilioInicio = in.AuxilioInicio
	p.AuxilioFin = in.AuxilioFin
	p.Descripcion = in.Descripcion
	p.Observaciones = in.Observaciones
	if err := uc.parteRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID devuelve un parte por ID.
func (uc *ParteUseCase) GetByID(id string) (*entity.ParteDiario, error) {
	return uc.parteRepo.GetByID(id)
}

// Listar devuelve partes filtrados.
func (uc *ParteUseCase) Listar(filtro repository.ParteFiltro, limit, offset int) ([]*entity.ParteDiario, error) {
	return uc.parteRepo.List(filtro, limit, offset)
}

// Eliminar borra un parte.
func (uc *ParteUseCase) Eliminar(_ context.Context, id string) error {
	p, err := uc.parteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.parteRepo.Delete(id)
}
