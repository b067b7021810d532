package repository

import (
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// ParteFiltro filtros de listado de partes diarios.
type ParteFiltro struct {
	ColectivoID string
	Tipo        string
	Estado      string
	Severidad   string
	Desde       *time.Time
	Hasta       *time.Time
}

// ParteRepository define el puerto de persistencia para partes diarios.
type ParteRepository interface {
	Create(p *entity.ParteDiario) error
	GetByID(id string) (*entity.ParteDiario, error)
	Update(p *entity.ParteDiario) error
	List(filtro ParteFiltro, limit, offset int) ([]*entity.ParteDiario, error)
	Delete(id string) error
}
