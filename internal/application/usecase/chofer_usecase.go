package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ChoferUseCase casos de uso CRUD para choferes.
type ChoferUseCase struct {
	repo repository.ChoferRepository
}

// NewChoferUseCase construye el caso de uso.
func NewChoferUseCase(repo repository.ChoferRepository) *ChoferUseCase {
	return &ChoferUseCase{repo: repo}
}

// Create crea un chofer. El legajo es único.
func (uc *ChoferUseCase) Create(in dto.CreateChoferRequest) (*dto.ChoferResponse, error) {
	if in.Legajo == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByLegajo(in.Legajo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Chofer{
		ID:          uuid.New().String(),
		Legajo:      in.Legajo,
		Nombre:      in.Nombre,
		Apellido:    in.Apellido,
		DNI:         in.DNI,
		Telefono:    in.Telefono,
		LicenciaVto: in.LicenciaVto,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toChoferResponse(c), nil
}

// GetByID obtiene un chofer por ID.
func (uc *ChoferUseCase) GetByID(id string) (*dto.ChoferResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toChoferResponse(c), nil
}

// Update actualiza un chofer. El legajo no se modifica.
func (uc *ChoferUseCase) Update(id string, in dto.UpdateChoferRequest) (*dto.ChoferResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		c.Apellido = *in.Apellido
	}
	if in.DNI != nil {
		c.DNI = *in.DNI
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.LicenciaVto != nil {
		c.LicenciaVto = in.LicenciaVto
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toChoferResponse(c), nil
}

// List lista choferes.
func (uc *ChoferUseCase) List(q string, activo *bool, page dto.PageRequest) ([]dto.ChoferResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(q, activo, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChoferResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChoferResponse(c))
	}
	return items, nil
}

// Delete elimina un chofer. Falla con ErrConflict si tiene salidas asignadas.
func (uc *ChoferUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toChoferResponse(c *entity.Chofer) *dto.ChoferResponse {
	return &dto.ChoferResponse{
		ID:          c.ID,
		Legajo:      c.Legajo,
		Nombre:      c.Nombre,
		Apellido:    c.Apellido,
		DNI:         c.DNI,
		Telefono:    c.Telefono,
		LicenciaVto: c.LicenciaVto,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
