package inventory

import (
	"context"

	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// revertir + aplicar en una edición comitea o rollbackea como un todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
	) error) error
}
