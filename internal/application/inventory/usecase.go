package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// MovimientoUseCase es el motor de stock: registra, edita y elimina movimientos
// (INGRESO, EGRESO, AJUSTE, TRANSFERENCIA) manteniendo StockActual consistente,
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovimientoUseCase struct {
	txRunner      TxRunner
	productoRepo  repository.ProductoRepository
	ubicacionRepo repository.UbicacionRepository
	colectivoRepo repository.ColectivoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	ubicacionRepo repository.UbicacionRepository,
	colectivoRepo repository.ColectivoRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		txRunner:      txRunner,
		productoRepo:  productoRepo,
		ubicacionRepo: ubicacionRepo,
		colectivoRepo: colectivoRepo,
	}
}

// MovimientoInputDTO entrada para registrar o editar un movimiento de stock.
// Para INGRESO/EGRESO/AJUSTE: ProductoID, UbicacionID, Tipo, Cantidad.
// Para TRANSFERENCIA: además UbicacionDestinoID, distinta del origen.
type MovimientoInputDTO struct {
	ProductoID         string
	UbicacionID        string
	UbicacionDestinoID string
	ColectivoID        string
	Tipo               string
	Cantidad           decimal.Decimal
	Referencia         string
	Observaciones      string
	Lote               string
	FechaVencimiento   *time.Time
	UsuarioID          string
}

// validar aplica las reglas de forma del movimiento y verifica que producto y
// ubicaciones existan. Para TRANSFERENCIA exige destino distinto del origen y
// que ambas ubicaciones permitan transferencias.
func (uc *MovimientoUseCase) validar(input MovimientoInputDTO) error {
	if input.ProductoID == "" || input.UbicacionID == "" {
		return domain.ErrMovimientoInvalido
	}

	switch input.Tipo {
	case entity.MovimientoINGRESO, entity.MovimientoEGRESO:
		if !input.Cantidad.GreaterThan(decimal.Zero) {
			return domain.ErrMovimientoInvalido
		}
	case entity.MovimientoAJUSTE:
		if input.Cantidad.IsZero() {
			return domain.ErrMovimientoInvalido
		}
	case entity.MovimientoTRANSFERENCIA:
		if !input.Cantidad.GreaterThan(decimal.Zero) {
			return domain.ErrMovimientoInvalido
		}
		if input.UbicacionDestinoID == "" || input.UbicacionDestinoID == input.UbicacionID {
			return domain.ErrMovimientoInvalido
		}
	default:
		return domain.ErrTipoMovimientoInvalido
	}

	producto, err := uc.productoRepo.GetByID(input.ProductoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}

	origen, err := uc.ubicacionRepo.GetByID(input.UbicacionID)
	if err != nil {
		return err
	}
	if origen == nil {
		return domain.ErrNotFound
	}

	if input.Tipo == entity.MovimientoTRANSFERENCIA {
		destino, err := uc.ubicacionRepo.GetByID(input.UbicacionDestinoID)
		if err != nil {
			return err
		}
		if destino == nil {
			return domain.ErrNotFound
		}
		if !origen.PermiteTransferencias || !destino.PermiteTransferencias {
			return domain.ErrMovimientoInvalido
		}
	}

	if input.ColectivoID != "" {
		col, err := uc.colectivoRepo.GetByID(input.ColectivoID)
		if err != nil {
			return err
		}
		if col == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// RegistrarMovimiento valida el movimiento, inicia una transacción, bloquea
// las filas de stock afectadas, aplica el efecto y persiste el registro.
// Cualquier violación aritmética aborta antes de escribir fila alguna.
func (uc *MovimientoUseCase) RegistrarMovimiento(ctx context.Context, input MovimientoInputDTO) (*entity.Movimiento, error) {
	if err := uc.validar(input); err != nil {
		return nil, err
	}

	now := time.Now()
	mov := movimientoDesdeInput(input, now)
	mov.ID = uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := aplicarEfecto(stockRepo, mov, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ActualizarMovimiento edita un movimiento existente: dentro de una misma
// transacción revierte el efecto del movimiento viejo, aplica el nuevo y
// actualiza el registro. Si el nuevo efecto falla, el rollback preserva el
// estado anterior (editar equivale a eliminar + recrear).
func (uc *MovimientoUseCase) ActualizarMovimiento(ctx context.Context, id string, input MovimientoInputDTO) (*entity.Movimiento, error) {
	if err := uc.validar(input); err != nil {
		return nil, err
	}

	now := time.Now()
	var actualizado *entity.Movimiento

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
	) error {
		viejo, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if viejo == nil {
			return domain.ErrNotFound
		}

		// 1) revertir el efecto viejo
		if err := revertirEfecto(stockRepo, viejo, now); err != nil {
			return err
		}

		// 2) aplicar el nuevo
		nuevo := movimientoDesdeInput(input, now)
		nuevo.ID = viejo.ID
		nuevo.Fecha = viejo.Fecha
		nuevo.CreatedAt = viejo.CreatedAt
		if err := aplicarEfecto(stockRepo, nuevo, now); err != nil {
			return err
		}

		actualizado = nuevo
		return movRepo.Update(nuevo)
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// EliminarMovimiento revierte el efecto del movimiento y borra el registro,
// todo en una transacción.
func (uc *MovimientoUseCase) EliminarMovimiento(ctx context.Context, id string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if err := revertirEfecto(stockRepo, mov, now); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

func movimientoDesdeInput(input MovimientoInputDTO, now time.Time) *entity.Movimiento {
	mov := &entity.Movimiento{
		ProductoID:       input.ProductoID,
		UbicacionID:      input.UbicacionID,
		Tipo:             input.Tipo,
		Cantidad:         input.Cantidad,
		Referencia:       input.Referencia,
		Observaciones:    input.Observaciones,
		Lote:             input.Lote,
		FechaVencimiento: input.FechaVencimiento,
		Fecha:            now,
		CreatedAt:        now,
	}
	if input.Tipo == entity.MovimientoTRANSFERENCIA {
		destino := input.UbicacionDestinoID
		mov.UbicacionDestinoID = &destino
	}
	if input.ColectivoID != "" {
		col := input.ColectivoID
		mov.ColectivoID = &col
	}
	if input.UsuarioID != "" {
		usr := input.UsuarioID
		mov.UsuarioID = &usr
	}
	return mov
}

// ── Efectos sobre StockActual ─────────────────────────────────────────────────
//
// Todas las funciones bloquean la fila con GetForUpdate antes de mutar: dos
// movimientos concurrentes sobre el mismo par (producto, ubicación) se
// serializan; pares distintos avanzan en paralelo.

func aplicarIngreso(stockRepo repository.StockRepository, productoID, ubicacionID string, qty decimal.Decimal, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(productoID, ubicacionID)
	if err != nil {
		return err
	}
	stock.Cantidad = stock.Cantidad.Add(qty)
	stock.LastMovementAt = &now
	return stockRepo.Upsert(stock)
}

func aplicarEgreso(stockRepo repository.StockRepository, productoID, ubicacionID string, qty decimal.Decimal, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(productoID, ubicacionID)
	if err != nil {
		return err
	}
	// Validación antes de escribir: no dejar stock negativo.
	if stock.Cantidad.Sub(qty).IsNegative() {
		return domain.ErrStockInsuficiente
	}
	stock.Cantidad = stock.Cantidad.Sub(qty)
	stock.LastMovementAt = &now
	return stockRepo.Upsert(stock)
}

func aplicarAjuste(stockRepo repository.StockRepository, productoID, ubicacionID string, qty decimal.Decimal, now time.Time) error {
	// El ajuste suma (la cantidad puede ser negativa).
	stock, err := stockRepo.GetForUpdate(productoID, ubicacionID)
	if err != nil {
		return err
	}
	if stock.Cantidad.Add(qty).IsNegative() {
		return domain.ErrStockInsuficiente
	}
	stock.Cantidad = stock.Cantidad.Add(qty)
	stock.LastMovementAt = &now
	return stockRepo.Upsert(stock)
}

// aplicarEfecto muta StockActual según el tipo del movimiento. La
// transferencia es egreso en origen + ingreso en destino, en ese orden.
func aplicarEfecto(stockRepo repository.StockRepository, mov *entity.Movimiento, now time.Time) error {
	switch mov.Tipo {
	case entity.MovimientoINGRESO:
		return aplicarIngreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now)
	case entity.MovimientoEGRESO:
		return aplicarEgreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now)
	case entity.MovimientoAJUSTE:
		return aplicarAjuste(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now)
	case entity.MovimientoTRANSFERENCIA:
		if mov.UbicacionDestinoID == nil {
			return domain.ErrMovimientoInvalido
		}
		if err := aplicarEgreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now); err != nil {
			return err
		}
		return aplicarIngreso(stockRepo, mov.ProductoID, *mov.UbicacionDestinoID, mov.Cantidad, now)
	}
	return domain.ErrTipoMovimientoInvalido
}

// revertirEfecto aplica el inverso exacto de aplicarEfecto: ingreso↔egreso,
// ajuste negado, transferencia invertida (ingreso en origen + egreso en destino).
func revertirEfecto(stockRepo repository.StockRepository, mov *entity.Movimiento, now time.Time) error {
	switch mov.Tipo {
	case entity.MovimientoINGRESO:
		return aplicarEgreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now)
	case entity.MovimientoEGRESO:
		return aplicarIngreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now)
	case entity.MovimientoAJUSTE:
		return aplicarAjuste(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad.Neg(), now)
	case entity.MovimientoTRANSFERENCIA:
		if mov.UbicacionDestinoID == nil {
			return domain.ErrMovimientoInvalido
		}
		if err := aplicarIngreso(stockRepo, mov.ProductoID, mov.UbicacionID, mov.Cantidad, now); err != nil {
			return err
		}
		return aplicarEgreso(stockRepo, mov.ProductoID, *mov.UbicacionDestinoID, mov.Cantidad, now)
	}
	return domain.ErrTipoMovimientoInvalido
}
