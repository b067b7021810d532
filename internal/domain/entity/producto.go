package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del pañol (repuesto, insumo, herramienta).
// El código es único y se normaliza en mayúsculas. La categoría, subcategoría
// y unidad de medida se guardan como texto plano: son etiquetas de catálogo,
// no entidades con ciclo de vida propio.
type Producto struct {
	ID                string
	Codigo            string // único, ej: FIL-AC-001
	Nombre            string
	Descripcion       string
	Categoria         string
	Subcategoria      string
	UnidadMedida      string // ej: "unidad", "litro", "kg"
	Proveedor         string
	StockMinimo       decimal.Decimal // umbral para alertas de reposición
	ManejaVencimiento bool
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Normalizar aplica las normalizaciones de carga: código en mayúsculas y
// campos de texto sin espacios sobrantes.
func (p *Producto) Normalizar() {
	p.Codigo = strings.ToUpper(strings.TrimSpace(p.Codigo))
	p.Nombre = strings.TrimSpace(p.Nombre)
	p.Categoria = strings.TrimSpace(p.Categoria)
	p.Subcategoria = strings.TrimSpace(p.Subcategoria)
	p.Proveedor = strings.TrimSpace(p.Proveedor)
}
