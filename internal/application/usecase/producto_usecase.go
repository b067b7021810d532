package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del pañol. El stock no se
// toca acá: se maneja exclusivamente vía movimientos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto. El código se normaliza en mayúsculas y debe
// ser único.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		ID:                uuid.New().String(),
		Codigo:            in.Codigo,
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		Categoria:         in.Categoria,
		Subcategoria:      in.Subcategoria,
		UnidadMedida:      in.UnidadMedida,
		Proveedor:         in.Proveedor,
		StockMinimo:       in.StockMinimo,
		ManejaVencimiento: in.ManejaVencimiento,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	p.Normalizar()
	existing, _ := uc.repo.GetByCodigo(p.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(p), nil
}

// Update actualiza un producto. El código no se modifica: es el identificador
// operativo que figura en etiquetas y remitos.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Subcategoria != nil {
		p.Subcategoria = *in.Subcategoria
	}
	if in.UnidadMedida != nil {
		p.UnidadMedida = *in.UnidadMedida
	}
	if in.Proveedor != nil {
		p.Proveedor = *in.Proveedor
	}
	if in.StockMinimo != nil {
		if in.StockMinimo.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.StockMinimo = *in.StockMinimo
	}
	if in.ManejaVencimiento != nil {
		p.ManejaVencimiento = *in.ManejaVencimiento
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.Normalizar()
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductoUseCase) List(filtro repository.ProductoFiltro, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto. Falla con ErrConflict si tiene movimientos.
func (uc *ProductoUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                p.ID,
		Codigo:            p.Codigo,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Categoria:         p.Categoria,
		Subcategoria:      p.Subcategoria,
		UnidadMedida:      p.UnidadMedida,
		Proveedor:         p.Proveedor,
		StockMinimo:       p.StockMinimo,
		ManejaVencimiento: p.ManejaVencimiento,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
