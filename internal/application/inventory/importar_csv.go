package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
)

// OpcionesImport opciones del import de stock inicial.
type OpcionesImport struct {
	Delimiter  rune   // 0 = autodetectar
	DefaultRef string // referencia si la columna viene vacía
	UsuarioID  string
	DryRun     bool // valida y totaliza sin escribir nada
}

// ResumenImport totales de una corrida de import.
type ResumenImport struct {
	Filas     int
	Aplicadas int
	Errores   []string
}

// ImportarStockInicial lee un CSV (codigo_producto, codigo_ubicacion,
// cantidad, referencia, lote) y genera movimientos INGRESO a través del motor
// de stock. Pensado para el primer inventario del depósito.
//
// El archivo suele venir de Excel: se autodetecta el separador (Excel AR usa
// ";") y, si el contenido no es UTF-8 válido, se decodifica como Windows-1252.
func (uc *MovimientoUseCase) ImportarStockInicial(ctx context.Context, r io.Reader, opts OpcionesImport) (*ResumenImport, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if !utf8.Valid(raw) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar Windows-1252: %w", err)
		}
		raw = decoded
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(string(raw))
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	if len(records) == 0 {
		return &ResumenImport{}, nil
	}

	cols := indexarColumnas(records[0])
	if _, ok := cols["codigo_producto"]; !ok {
		return nil, fmt.Errorf("falta la columna codigo_producto")
	}
	if _, ok := cols["codigo_ubicacion"]; !ok {
		return nil, fmt.Errorf("falta la columna codigo_ubicacion")
	}
	if _, ok := cols["cantidad"]; !ok {
		return nil, fmt.Errorf("falta la columna cantidad")
	}

	resumen := &ResumenImport{}
	for i, rec := range records[1:] {
		fila := i + 2 // numeración humana, contando el header
		resumen.Filas++

		get := func(col string) string {
			idx, ok := cols[col]
			if !ok || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		codProd := strings.ToUpper(get("codigo_producto"))
		codUbic := strings.ToUpper(get("codigo_ubicacion"))
		if codProd == "" || codUbic == "" {
			resumen.Errores = append(resumen.Errores, fmt.Sprintf("fila %d: código de producto o ubicación vacío", fila))
			continue
		}

		// Excel AR usa coma decimal
		cantidadStr := strings.ReplaceAll(get("cantidad"), ",", ".")
		cantidad, err := decimal.NewFromString(cantidadStr)
		if err != nil || !cantidad.GreaterThan(decimal.Zero) {
			resumen.Errores = append(resumen.Errores, fmt.Sprintf("fila %d: cantidad inválida %q", fila, get("cantidad")))
			continue
		}

		producto, err := uc.productoRepo.GetByCodigo(codProd)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			resumen.Errores = append(resumen.Errores, fmt.Sprintf("fila %d: producto %s no existe", fila, codProd))
			continue
		}
		ubicacion, err := uc.ubicacionRepo.GetByCodigo(codUbic)
		if err != nil {
			return nil, err
		}
		if ubicacion == nil {
			resumen.Errores = append(resumen.Errores, fmt.Sprintf("fila %d: ubicación %s no existe", fila, codUbic))
			continue
		}

		if opts.DryRun {
			resumen.Aplicadas++
			continue
		}

		referencia := get("referencia")
		if referencia == "" {
			referencia = opts.DefaultRef
		}
		_, err = uc.RegistrarMovimiento(ctx, MovimientoInputDTO{
			ProductoID:  producto.ID,
			UbicacionID: ubicacion.ID,
			Tipo:        entity.MovimientoINGRESO,
			Cantidad:    cantidad,
			Referencia:  referencia,
			Lote:        get("lote"),
			UsuarioID:   opts.UsuarioID,
		})
		if err != nil {
			resumen.Errores = append(resumen.Errores, fmt.Sprintf("fila %d: %v", fila, err))
			continue
		}
		resumen.Aplicadas++
	}

	return resumen, nil
}

// sniffDelimiter heurística simple: Excel AR suele usar ";".
func sniffDelimiter(sample string) rune {
	if strings.Count(sample, ";") >= strings.Count(sample, ",") && strings.Count(sample, ";") > 0 {
		return ';'
	}
	if strings.Count(sample, ",") > 0 {
		return ','
	}
	return ';'
}

func indexarColumnas(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		cols[key] = i
	}
	return cols
}
