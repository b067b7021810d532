package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoINGRESO       = "INGRESO"
	MovimientoEGRESO        = "EGRESO"
	MovimientoAJUSTE        = "AJUSTE"        // corrección con signo
	MovimientoTRANSFERENCIA = "TRANSFERENCIA" // entre dos ubicaciones
)

// Movimiento representa una entrada del libro de stock (ingreso, egreso,
// ajuste o transferencia). Cantidad > 0 para INGRESO/EGRESO/TRANSFERENCIA;
// para AJUSTE lleva signo y no puede ser 0. UbicacionDestinoID sólo aplica
// (y es obligatoria) en TRANSFERENCIA.
type Movimiento struct {
	ID                 string
	ProductoID         string
	UbicacionID        string
	UbicacionDestinoID *string
	ColectivoID        *string // unidad asociada, para trazabilidad de consumos
	Tipo               string
	Cantidad           decimal.Decimal
	Referencia         string // remito, orden, nota de ajuste, etc.
	Observaciones      string
	Lote               string
	FechaVencimiento   *time.Time
	Fecha              time.Time // asignada al crear
	UsuarioID          *string
	CreatedAt          time.Time
}

// EsTransferencia indica si el movimiento mueve stock entre dos ubicaciones.
func (m *Movimiento) EsTransferencia() bool {
	return m.Tipo == MovimientoTRANSFERENCIA
}
