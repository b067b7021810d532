package repository

import "github.com/gabiv12/panol-erp/internal/domain/entity"

// ColectivoFiltro filtros de listado de unidades.
type ColectivoFiltro struct {
	Q      string // busca en dominio y marca/modelo
	Estado string
	Activo *bool
}

// ColectivoRepository define el puerto de persistencia para unidades de flota.
type ColectivoRepository interface {
	Create(c *entity.Colectivo) error
	GetByID(id string) (*entity.Colectivo, error)
	GetByInterno(interno int) (*entity.Colectivo, error)
	Update(c *entity.Colectivo) error
	List(filtro ColectivoFiltro, limit, offset int) ([]*entity.Colectivo, error)
	Delete(id string) error
}
