package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrUsernameAlreadyTaken = errors.New("el nombre de usuario ya está registrado")

	// Errores del motor de stock. Se levantan dentro de la transacción y antes
	// de escribir cualquier fila, así el rollback deja StockActual intacto.
	ErrStockInsuficiente      = errors.New("stock insuficiente")
	ErrMovimientoInvalido     = errors.New("movimiento de stock inválido")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento desconocido")
)
