package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ResumenReconciliacion resultado de una reconciliación de stock.
type ResumenReconciliacion struct {
	Movimientos int
	Pares       int
}

// Reconciliar reconstruye StockActual desde el historial completo de
// movimientos y reemplaza la tabla materializada. Es la única vía sancionada
// para escribir stock por fuera del motor; se corre offline como reparación
// de datos (también normaliza pares duplicados, porque reescribe una fila por
// par).
func (uc *MovimientoUseCase) Reconciliar(ctx context.Context) (*ResumenReconciliacion, error) {
	var resumen ResumenReconciliacion

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
	) error {
		movs, err := movRepo.ListTodos()
		if err != nil {
			return err
		}

		type par struct{ producto, ubicacion string }
		cantidades := make(map[par]decimal.Decimal)
		ultimos := make(map[par]time.Time)

		suma := func(p par, qty decimal.Decimal, fecha time.Time) {
			cantidades[p] = cantidades[p].Add(qty)
			if fecha.After(ultimos[p]) {
				ultimos[p] = fecha
			}
		}

		for _, m := range movs {
			origen := par{m.ProductoID, m.UbicacionID}
			switch m.Tipo {
			case entity.MovimientoINGRESO:
				suma(origen, m.Cantidad, m.Fecha)
			case entity.MovimientoEGRESO:
				suma(origen, m.Cantidad.Neg(), m.Fecha)
			case entity.MovimientoAJUSTE:
				suma(origen, m.Cantidad, m.Fecha)
			case entity.MovimientoTRANSFERENCIA:
				suma(origen, m.Cantidad.Neg(), m.Fecha)
				if m.UbicacionDestinoID != nil {
					suma(par{m.ProductoID, *m.UbicacionDestinoID}, m.Cantidad, m.Fecha)
				}
			}
		}

		if err := stockRepo.DeleteAll(); err != nil {
			return err
		}
		for p, qty := range cantidades {
			last := ultimos[p]
			if err := stockRepo.Upsert(&entity.Stock{
				ProductoID:     p.producto,
				UbicacionID:    p.ubicacion,
				Cantidad:       qty,
				LastMovementAt: &last,
			}); err != nil {
				return err
			}
		}

		resumen = ResumenReconciliacion{Movimientos: len(movs), Pares: len(cantidades)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resumen, nil
}
