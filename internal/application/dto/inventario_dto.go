package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest body para POST /api/productos.
type CreateProductoRequest struct {
	Codigo            string          `json:"codigo"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion,omitempty"`
	Categoria         string          `json:"categoria,omitempty"`
	Subcategoria      string          `json:"subcategoria,omitempty"`
	UnidadMedida      string          `json:"unidad_medida,omitempty"`
	Proveedor         string          `json:"proveedor,omitempty"`
	StockMinimo       decimal.Decimal `json:"stock_minimo"`
	ManejaVencimiento bool            `json:"maneja_vencimiento"`
}

// UpdateProductoRequest edición parcial de producto.
type UpdateProductoRequest struct {
	Nombre            *string          `json:"nombre,omitempty"`
	Descripcion       *string          `json:"descripcion,omitempty"`
	Categoria         *string          `json:"categoria,omitempty"`
	Subcategoria      *string          `json:"subcategoria,omitempty"`
	UnidadMedida      *string          `json:"unidad_medida,omitempty"`
	Proveedor         *string          `json:"proveedor,omitempty"`
	StockMinimo       *decimal.Decimal `json:"stock_minimo,omitempty"`
	ManejaVencimiento *bool            `json:"maneja_vencimiento,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

// ProductoResponse representación de un producto.
type ProductoResponse struct {
	ID                string          `json:"id"`
	Codigo            string          `json:"codigo"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion,omitempty"`
	Categoria         string          `json:"categoria,omitempty"`
	Subcategoria      string          `json:"subcategoria,omitempty"`
	UnidadMedida      string          `json:"unidad_medida,omitempty"`
	Proveedor         string          `json:"proveedor,omitempty"`
	StockMinimo       decimal.Decimal `json:"stock_minimo"`
	ManejaVencimiento bool            `json:"maneja_vencimiento"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductoListResponse página de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateUbicacionRequest body para POST /api/ubicaciones.
type CreateUbicacionRequest struct {
	Codigo                string  `json:"codigo"`
	Nombre                string  `json:"nombre,omitempty"`
	Tipo                  string  `json:"tipo,omitempty"`
	PadreID               *string `json:"padre_id,omitempty"`
	PermiteTransferencias *bool   `json:"permite_transferencias,omitempty"`
	Referencia            string  `json:"referencia,omitempty"`
	Descripcion           string  `json:"descripcion,omitempty"`
}

// UpdateUbicacionRequest edición parcial de ubicación.
type UpdateUbicacionRequest struct {
	Nombre                *string `json:"nombre,omitempty"`
	Tipo                  *string `json:"tipo,omitempty"`
	PadreID               *string `json:"padre_id,omitempty"`
	PermiteTransferencias *bool   `json:"permite_transferencias,omitempty"`
	Referencia            *string `json:"referencia,omitempty"`
	Descripcion           *string `json:"descripcion,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
}

// UbicacionResponse representación de una ubicación.
type UbicacionResponse struct {
	ID                    string    `json:"id"`
	Codigo                string    `json:"codigo"`
	Nombre                string    `json:"nombre,omitempty"`
	Tipo                  string    `json:"tipo"`
	PadreID               *string   `json:"padre_id,omitempty"`
	PermiteTransferencias bool      `json:"permite_transferencias"`
	Referencia            string    `json:"referencia,omitempty"`
	Descripcion           string    `json:"descripcion,omitempty"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// UbicacionListResponse página de ubicaciones.
type UbicacionListResponse struct {
	Items []UbicacionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// RegistrarMovimientoRequest body para POST /api/inventario/movimientos.
// Para TRANSFERENCIA se exige ubicacion_destino_id distinta del origen.
type RegistrarMovimientoRequest struct {
	ProductoID         string          `json:"producto_id"`
	UbicacionID        string          `json:"ubicacion_id"`
	UbicacionDestinoID string          `json:"ubicacion_destino_id,omitempty"`
	ColectivoID        string          `json:"colectivo_id,omitempty"`
	Tipo               string          `json:"tipo"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	Referencia         string          `json:"referencia,omitempty"`
	Observaciones      string          `json:"observaciones,omitempty"`
	Lote               string          `json:"lote,omitempty"`
	FechaVencimiento   *time.Time      `json:"fecha_vencimiento,omitempty"`
}

// MovimientoResponse representación de un movimiento del libro de stock.
type MovimientoResponse struct {
	ID                 string          `json:"id"`
	ProductoID         string          `json:"producto_id"`
	UbicacionID        string          `json:"ubicacion_id"`
	UbicacionDestinoID *string         `json:"ubicacion_destino_id,omitempty"`
	ColectivoID        *string         `json:"colectivo_id,omitempty"`
	Tipo               string          `json:"tipo"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	Referencia         string          `json:"referencia,omitempty"`
	Observaciones      string          `json:"observaciones,omitempty"`
	Lote               string          `json:"lote,omitempty"`
	FechaVencimiento   *time.Time      `json:"fecha_vencimiento,omitempty"`
	Fecha              time.Time       `json:"fecha"`
	UsuarioID          *string         `json:"usuario_id,omitempty"`
}

// StockResponse fila de stock actual con códigos resueltos.
type StockResponse struct {
	ProductoID      string          `json:"producto_id"`
	ProductoCodigo  string          `json:"producto_codigo"`
	ProductoNombre  string          `json:"producto_nombre"`
	UbicacionID     string          `json:"ubicacion_id"`
	UbicacionCodigo string          `json:"ubicacion_codigo"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	LastMovementAt  *time.Time      `json:"last_movement_at,omitempty"`
}

// BajoMinimoResponse fila del reporte bajo mínimo.
type BajoMinimoResponse struct {
	ProductoID    string          `json:"producto_id"`
	Codigo        string          `json:"codigo"`
	Nombre        string          `json:"nombre"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	CantidadTotal decimal.Decimal `json:"cantidad_total"`
}
