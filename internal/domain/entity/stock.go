package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock actual de un producto en una ubicación (tabla
// materializada, una fila por par producto+ubicación). Se deriva exclusivamente
// del historial de movimientos; la cantidad nunca puede quedar negativa.
type Stock struct {
	ProductoID     string
	UbicacionID    string
	Cantidad       decimal.Decimal
	LastMovementAt *time.Time
}
