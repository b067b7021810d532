// Package pdf implementa la generación del plan del día imprimible: la hoja
// que el diagramador cuelga en el pañol con las salidas programadas de la
// jornada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa │ PLAN DEL DÍA + fecha                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Interno | Dominio | Recorrido | Sección |    │
//	│         Chofer | Regreso | Estado                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de salidas + hora de impresión                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gabiv12/panol-erp/internal/application/flota"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPlanGenerator implementa flota.PlanPDFGenerator usando Maroto v2.
type MarotoPlanGenerator struct {
	empresa string
	loc     *time.Location
}

// NewMarotoPlanGenerator construye el generador. empresa figura en el header.
func NewMarotoPlanGenerator(empresa string, loc *time.Location) *MarotoPlanGenerator {
	return &MarotoPlanGenerator{empresa: empresa, loc: loc}
}

var _ flota.PlanPDFGenerator = (*MarotoPlanGenerator)(nil)

// GenerarPlanPDF genera el PDF del plan del día y devuelve sus bytes.
func (g *MarotoPlanGenerator) GenerarPlanPDF(dia time.Time, filas []flota.FilaPlan) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan del día", true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.empresa, dia))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, f := range filas {
		m.AddRows(filaRow(f))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(filas), time.Now().In(g.loc)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar plan: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y título + fecha del plan (der).
func headerRow(empresa string, dia time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Diagrama de salidas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLAN DEL DÍA", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(dia.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 1, align.Center),
		h("Int.", 1, align.Center),
		h("Dominio", 2, align.Left),
		h("Recorrido", 3, align.Left),
		h("Secc.", 1, align.Center),
		h("Chofer", 2, align.Left),
		h("Reg.", 1, align.Center),
		h("Estado", 1, align.Center),
	)
}

// filaRow: una fila por salida. Las canceladas se imprimen en gris.
func filaRow(f flota.FilaPlan) core.Row {
	color := &props.Color{}
	if f.Estado == "CANCELADA" {
		color = colorGray
	}
	c := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	return row.New(7).Add(
		c(f.Hora, 1, align.Center),
		c(fmt.Sprintf("%d", f.Interno), 1, align.Center),
		c(f.Dominio, 2, align.Left),
		c(f.Recorrido, 3, align.Left),
		c(f.Seccion, 1, align.Center),
		c(f.Chofer, 2, align.Left),
		c(f.Regreso, 1, align.Center),
		c(f.Estado, 1, align.Center),
	)
}

func footerRow(total int, impreso time.Time) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Total de salidas: %d", total),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"Impreso: "+impreso.Format("02/01/2006 15:04"),
			props.Text{Size: 8, Top: 2, Align: align.Right, Color: colorGray},
		)),
	)
}
