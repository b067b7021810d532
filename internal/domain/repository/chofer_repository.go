package repository

import "github.com/gabiv12/panol-erp/internal/domain/entity"

// ChoferRepository define el puerto de persistencia para choferes.
type ChoferRepository interface {
	Create(c *entity.Chofer) error
	GetByID(id string) (*entity.Chofer, error)
	GetByLegajo(legajo string) (*entity.Chofer, error)
	Update(c *entity.Chofer) error
	List(q string, activo *bool, limit, offset int) ([]*entity.Chofer, error)
	Delete(id string) error
}
