package repository

import (
	"time"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// SalidaRepository define el puerto de persistencia del diagrama de salidas.
// Los rangos [desde, hasta) los arma el caso de uso en la zona horaria local.
type SalidaRepository interface {
	Create(s *entity.Salida) error
	GetByID(id string) (*entity.Salida, error)
	Update(s *entity.Salida) error
	Delete(id string) error
	ListByRango(desde, hasta time.Time) ([]*entity.Salida, error)
	DiaTieneSalidas(desde, hasta time.Time) (bool, error)
	// UltimaSalida devuelve la fecha de la salida más reciente de todo el
	// diagrama, o nil si no hay ninguna. Lo usa el fallback del resolutor de día.
	UltimaSalida() (*time.Time, error)
}
