package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ColectivoUseCase casos de uso CRUD para unidades de flota, más el cálculo
// de alertas de mantenimiento.
type ColectivoUseCase struct {
	repo repository.ColectivoRepository
	loc  *time.Location
}

// NewColectivoUseCase construye el caso de uso. loc es la zona horaria de la
// operación; las alertas de vencimiento se calculan contra "hoy" local.
func NewColectivoUseCase(repo repository.ColectivoRepository, loc *time.Location) *ColectivoUseCase {
	return &ColectivoUseCase{repo: repo, loc: loc}
}

func estadoColectivoValido(estado string) bool {
	switch estado {
	case entity.ColectivoACTIVO, entity.ColectivoTALLER, entity.ColectivoBAJA:
		return true
	}
	return false
}

// Create crea una unidad. Interno y dominio son únicos.
func (uc *ColectivoUseCase) Create(in dto.CreateColectivoRequest) (*dto.ColectivoResponse, error) {
	if in.Interno <= 0 || in.Dominio == "" {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ColectivoACTIVO
	}
	if !estadoColectivoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByInterno(in.Interno)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Colectivo{
		ID:           uuid.New().String(),
		Interno:      in.Interno,
		Dominio:      in.Dominio,
		AnioModelo:   in.AnioModelo,
		Marca:        in.Marca,
		Modelo:       in.Modelo,
		NumeroChasis: in.NumeroChasis,

		RevisionTecnicaVto:  in.RevisionTecnicaVto,
		MatafuegoVto:        in.MatafuegoVto,
		MatafuegoUltControl: in.MatafuegoUltControl,

		OdometroKm:    in.OdometroKm,
		OdometroFecha: in.OdometroFecha,

		AceiteIntervaloKm:       in.AceiteIntervaloKm,
		AceiteUltimoCambioKm:    in.AceiteUltimoCambioKm,
		AceiteUltimoCambioFecha: in.AceiteUltimoCambioFecha,

		FiltrosIntervaloKm:       in.FiltrosIntervaloKm,
		FiltrosUltimoCambioKm:    in.FiltrosUltimoCambioKm,
		FiltrosUltimoCambioFecha: in.FiltrosUltimoCambioFecha,

		TipoServicio:  in.TipoServicio,
		Jurisdiccion:  in.Jurisdiccion,
		Estado:        estado,
		Observaciones: in.Observaciones,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	c.Normalizar()
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toColectivoResponse(c), nil
}

// GetByID obtiene una unidad por ID.
func (uc *ColectivoUseCase) GetByID(id string) (*dto.ColectivoResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toColectivoResponse(c), nil
}

// Update actualiza una unidad.
func (uc *ColectivoUseCase) Update(id string, in dto.UpdateColectivoRequest) (*dto.ColectivoResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Interno != nil {
		if *in.Interno <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if *in.Interno != c.Interno {
			otro, _ := uc.repo.GetByInterno(*in.Interno)
			if otro != nil && otro.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		c.Interno = *in.Interno
	}
	if in.Dominio != nil {
		c.Dominio = *in.Dominio
	}
	if in.AnioModelo != nil {
		c.AnioModelo = *in.AnioModelo
	}
	if in.Marca != nil {
		c.Marca = *in.Marca
	}
	if in.Modelo != nil {
		c.Modelo = *in.Modelo
	}
	if in.NumeroChasis != nil {
		c.NumeroChasis = in.NumeroChasis
	}
	if in.RevisionTecnicaVto != nil {
		c.RevisionTecnicaVto = in.RevisionTecnicaVto
	}
	if in.MatafuegoVto != nil {
		c.MatafuegoVto = in.MatafuegoVto
	}
	if in.MatafuegoUltControl != nil {
		c.MatafuegoUltControl = in.MatafuegoUltControl
	}
	if in.OdometroKm != nil {
		c.OdometroKm = in.OdometroKm
	}
	if in.OdometroFecha != nil {
		c.OdometroFecha = in.OdometroFecha
	}
	if in.AceiteIntervaloKm != nil {
		c.AceiteIntervaloKm = in.AceiteIntervaloKm
	}
	if in.AceiteUltimoCambioKm != nil {
		c.AceiteUltimoCambioKm = in.AceiteUltimoCambioKm
	}
	if in.AceiteUltimoCambioFecha != nil {
		c.AceiteUltimoCambioFecha = in.AceiteUltimoCambioFecha
	}
	if in.FiltrosIntervaloKm != nil {
		c.FiltrosIntervaloKm = in.FiltrosIntervaloKm
	}
	if in.FiltrosUltimoCambioKm != nil {
		c.FiltrosUltimoCambioKm = in.FiltrosUltimoCambioKm
	}
	if in.FiltrosUltimoCambioFecha != nil {
		c.FiltrosUltimoCambioFecha = in.FiltrosUltimoCambioFecha
	}
	if in.TipoServicio != nil {
		c.TipoServicio = *in.TipoServicio
	}
	if in.Jurisdiccion != nil {
		c.Jurisdiccion = *in.Jurisdiccion
	}
	if in.Estado != nil {
		if !estadoColectivoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		c.Estado = *in.Estado
	}
	if in.Observaciones != nil {
		c.Observaciones = *in.Observaciones
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.Normalizar()
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toColectivoResponse(c), nil
}

// List lista unidades con filtros y paginación.
func (uc *ColectivoUseCase) List(filtro repository.ColectivoFiltro, page dto.PageRequest) ([]dto.ColectivoResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColectivoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toColectivoResponse(c))
	}
	return items, nil
}

// Delete elimina una unidad. Falla con ErrConflict si tiene partes o salidas.
func (uc *ColectivoUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Alertas calcula las alertas de mantenimiento de una unidad.
func (uc *ColectivoUseCase) Alertas(id string) ([]flota.AlertaColectivo, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	hoy := time.Now().In(uc.loc)
	return flota.AlertasDeColectivo(c, hoy), nil
}

// AlertasFlota calcula las alertas de toda la flota activa, agrupadas por
// unidad. Sólo devuelve unidades con al menos una alerta.
func (uc *ColectivoUseCase) AlertasFlota() (map[int][]flota.AlertaColectivo, error) {
	activo := true
	list, err := uc.repo.List(repository.ColectivoFiltro{Activo: &activo}, 1000, 0)
	if err != nil {
		return nil, err
	}
	hoy := time.Now().In(uc.loc)
	out := make(map[int][]flota.AlertaColectivo)
	for _, c := range list {
		alertas := flota.AlertasDeColectivo(c, hoy)
		if len(alertas) > 0 {
			out[c.Interno] = alertas
		}
	}
	return out, nil
}

func toColectivoResponse(c *entity.Colectivo) *dto.ColectivoResponse {
	return &dto.ColectivoResponse{
		ID:           c.ID,
		Interno:      c.Interno,
		Dominio:      c.Dominio,
		AnioModelo:   c.AnioModelo,
		Marca:        c.Marca,
		Modelo:       c.Modelo,
		NumeroChasis: c.NumeroChasis,

		RevisionTecnicaVto:  c.RevisionTecnicaVto,
		MatafuegoVto:        c.MatafuegoVto,
		MatafuegoUltControl: c.MatafuegoUltControl,

		OdometroKm:    c.OdometroKm,
		OdometroFecha: c.OdometroFecha,

		AceiteIntervaloKm:       c.AceiteIntervaloKm,
		AceiteUltimoCambioKm:    c.AceiteUltimoCambioKm,
		AceiteUltimoCambioFecha: c.AceiteUltimoCambioFecha,

		FiltrosIntervaloKm:       c.FiltrosIntervaloKm,
		FiltrosUltimoCambioKm:    c.FiltrosUltimoCambioKm,
		FiltrosUltimoCambioFecha: c.FiltrosUltimoCambioFecha,

		TipoServicio:  c.TipoServicio,
		Jurisdiccion:  c.Jurisdiccion,
		Estado:        c.Estado,
		Observaciones: c.Observaciones,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
