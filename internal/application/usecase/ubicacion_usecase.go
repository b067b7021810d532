package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// UbicacionUseCase casos de uso CRUD para ubicaciones físicas.
type UbicacionUseCase struct {
	repo repository.UbicacionRepository
}

// NewUbicacionUseCase construye el caso de uso.
func NewUbicacionUseCase(repo repository.UbicacionRepository) *UbicacionUseCase {
	return &UbicacionUseCase{repo: repo}
}

func tipoUbicacionValido(tipo string) bool {
	switch tipo {
	case entity.UbicacionTipoDEPOSITO, entity.UbicacionTipoUBICACION,
		entity.UbicacionTipoZONA, entity.UbicacionTipoOTRO:
		return true
	}
	return false
}

// Create crea una ubicación. El padre, si viene, tiene que existir.
func (uc *UbicacionUseCase) Create(in dto.CreateUbicacionRequest) (*dto.UbicacionResponse, error) {
	if in.Codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.UbicacionTipoUBICACION
	}
	if !tipoUbicacionValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.PadreID != nil {
		padre, err := uc.repo.GetByID(*in.PadreID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	permite := true
	if in.PermiteTransferencias != nil {
		permite = *in.PermiteTransferencias
	}
	now := time.Now()
	u := &entity.Ubicacion{
		ID:                    uuid.New().String(),
		Codigo:                in.Codigo,
		Nombre:                in.Nombre,
		Tipo:                  tipo,
		PadreID:               in.PadreID,
		PermiteTransferencias: permite,
		Referencia:            in.Referencia,
		Descripcion:           in.Descripcion,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	u.Normalizar()
	existing, _ := uc.repo.GetByCodigo(u.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUbicacionResponse(u), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *UbicacionUseCase) GetByID(id string) (*dto.UbicacionResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUbicacionResponse(u), nil
}

// Update actualiza una ubicación. No permite que una ubicación sea su propio padre.
func (uc *UbicacionUseCase) Update(id string, in dto.UpdateUbicacionRequest) (*dto.UbicacionResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		if !tipoUbicacionValido(*in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		u.Tipo = *in.Tipo
	}
	if in.PadreID != nil {
		if *in.PadreID == id {
			return nil, domain.ErrInvalidInput
		}
		padre, err := uc.repo.GetByID(*in.PadreID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, domain.ErrInvalidInput
		}
		u.PadreID = in.PadreID
	}
	if in.PermiteTransferencias != nil {
		u.PermiteTransferencias = *in.PermiteTransferencias
	}
	if in.Referencia != nil {
		u.Referencia = *in.Referencia
	}
	if in.Descripcion != nil {
		u.Descripcion = *in.Descripcion
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.Normalizar()
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUbicacionResponse(u), nil
}

// List lista ubicaciones con filtros y paginación.
func (uc *UbicacionUseCase) List(filtro repository.UbicacionFiltro, page dto.PageRequest) (*dto.UbicacionListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UbicacionResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUbicacionResponse(u))
	}
	return &dto.UbicacionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una ubicación. Falla con ErrConflict si tiene stock o movimientos.
func (uc *UbicacionUseCase) Delete(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUbicacionResponse(u *entity.Ubicacion) *dto.UbicacionResponse {
	return &dto.UbicacionResponse{
		ID:                    u.ID,
		Codigo:                u.Codigo,
		Nombre:                u.Nombre,
		Tipo:                  u.Tipo,
		PadreID:               u.PadreID,
		PermiteTransferencias: u.PermiteTransferencias,
		Referencia:            u.Referencia,
		Descripcion:           u.Descripcion,
		IsActive:              u.IsActive,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}
