package inventory_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// fakeStockConsulta extiende el fake de stock con un detalle precargado que
// respeta el contrato del puerto: limit <= 0 devuelve todas las filas.
type fakeStockConsulta struct {
	*fakeStockRepo
	detalle []*repository.StockDetalle
}

func (r *fakeStockConsulta) ListDetalle(filtro repository.StockFiltro, limit, offset int) ([]*repository.StockDetalle, error) {
	out := make([]*repository.StockDetalle, 0, len(r.detalle))
	for _, d := range r.detalle {
		if filtro.SoloConStock && d.Cantidad.IsZero() {
			continue
		}
		out = append(out, d)
	}
	if limit > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
		if len(out) > limit {
			out = out[:limit]
		}
	}
	return out, nil
}

func TestExportarStockCSV_EscribeLasFilasConStock(t *testing.T) {
	ultimo := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	stockRepo := &fakeStockConsulta{
		fakeStockRepo: newFakeStockRepo(),
		detalle: []*repository.StockDetalle{
			{ProductoCodigo: "FIL-001", ProductoNombre: "Filtro de aceite", UbicacionCodigo: "DEP", Cantidad: decimal.NewFromInt(12), LastMovementAt: &ultimo},
			{ProductoCodigo: "ACE-15W40", ProductoNombre: "Aceite 15W40", UbicacionCodigo: "DEP", Cantidad: decimal.RequireFromString("3.5")},
			{ProductoCodigo: "COR-777", ProductoNombre: "Correa", UbicacionCodigo: "TAL", Cantidad: decimal.Zero},
		},
	}
	uc := inventory.NewConsultaStockUseCase(stockRepo, newFakeMovRepo())

	var buf bytes.Buffer
	require.NoError(t, uc.ExportarStockCSV(&buf))

	lineas := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lineas, 3, "header + las dos filas con stock; la fila en cero no se exporta")
	assert.Equal(t, "producto_codigo;producto_nombre;ubicacion_codigo;cantidad;ultimo_movimiento", lineas[0])
	assert.Equal(t, "FIL-001;Filtro de aceite;DEP;12.000;2026-08-15 10:30", lineas[1])
	assert.Equal(t, "ACE-15W40;Aceite 15W40;DEP;3.500;", lineas[2])
}
