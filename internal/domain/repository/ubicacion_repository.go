package repository

import "github.com/gabiv12/panol-erp/internal/domain/entity"

// UbicacionFiltro filtros de listado de ubicaciones.
type UbicacionFiltro struct {
	Q      string
	Tipo   string
	Activo *bool
}

// UbicacionRepository define el puerto de persistencia para ubicaciones.
type UbicacionRepository interface {
	Create(u *entity.Ubicacion) error
	GetByID(id string) (*entity.Ubicacion, error)
	GetByCodigo(codigo string) (*entity.Ubicacion, error)
	Update(u *entity.Ubicacion) error
	List(filtro UbicacionFiltro, limit, offset int) ([]*entity.Ubicacion, error)
	Delete(id string) error
}
