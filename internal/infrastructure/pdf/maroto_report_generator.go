// Package pdf implementa la generación del informe mensual de tesorería.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Congregación  │  Informe de Tesorería + período    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Entradas / Salidas / Balance del mes              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Descripción | Categoría | Monto      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSES: por categoría y por método de pago              │
//	│  PREBENDAS: detalle + total                                 │
//	│  METAS: meta | real | % | estado                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/tesoreria-api/internal/application/reporting"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/report"
	"github.com/jhoicas/tesoreria-api/pkg/config"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 26, Green: 77, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 40, Blue: 40}
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
// Los montos se formatean con los separadores del locale configurado.
type MarotoReportGenerator struct {
	printer  *message.Printer
	currency string
}

// NewMarotoReportGenerator construye el generador. Un locale inválido cae a "es".
func NewMarotoReportGenerator(cfg config.ReportConfig) *MarotoReportGenerator {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoReportGenerator{
		printer:  message.NewPrinter(tag),
		currency: cfg.Currency,
	}
}

// GenerateMonthlyReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(
	_ context.Context,
	data *reporting.MonthlyReportData,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Tesorería", true).
		WithAuthor(data.ChurchName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("MOVIMIENTOS DEL MES"))
	m.AddRows(g.movementsHeaderRow())
	for _, r := range g.movementRows(data.Movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("TOTALES POR CATEGORÍA"))
	for _, r := range g.breakdownRows(data.ByCategory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("TOTALES POR MÉTODO DE PAGO"))
	for _, r := range g.breakdownRows(data.ByMethod) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("PREBENDAS Y AUXILIOS"))
	for _, r := range g.prebendaRows(data.Prebendas) {
		m.AddRows(r)
	}
	m.AddRows(g.prebendaTotalRow(data.PrebendaTotal))

	if len(data.Goals) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitleRow("METAS DEL MES"))
		m.AddRows(g.goalsHeaderRow())
		for _, r := range g.goalRows(data.Goals) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: congregación (izq) y título + período (der).
func (g *MarotoReportGenerator) headerRow(data *reporting.MonthlyReportData) core.Row {
	period := fmt.Sprintf("%s %d", monthNames[data.Month-1], data.Year)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.ChurchName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tesorería", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("INFORME MENSUAL DE TESORERÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: entradas, salidas y balance del mes.
func (g *MarotoReportGenerator) summaryRow(data *reporting.MonthlyReportData) core.Row {
	balanceColor := colorPrimary
	if data.Balance.IsNegative() {
		balanceColor = colorRed
	}
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: c, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		cell("ENTRADAS", g.money(data.Entries), colorPrimary),
		cell("SALIDAS", g.money(data.Exits), colorRed),
		cell("BALANCE", g.money(data.Balance), balanceColor),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// movementsHeaderRow: cabecera de la tabla de movimientos.
func (g *MarotoReportGenerator) movementsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Doc.", 1, align.Center),
		h("Monto", 2, align.Right),
	)
}

// movementRows: una fila por movimiento; las salidas se muestran en rojo.
func (g *MarotoReportGenerator) movementRows(movs []*entity.Transaction) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, t := range movs {
		amountColor := colorPrimary
		if t.Type == entity.TransactionExit {
			amountColor = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				t.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				t.Type,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				t.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				t.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				t.DocumentNumber,
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				g.money(t.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}

// breakdownRows: pares clave/total en el orden en que llegan.
func (g *MarotoReportGenerator) breakdownRows(totals []report.KeyTotal) []core.Row {
	result := make([]core.Row, 0, len(totals))
	for _, kt := range totals {
		key := kt.Key
		if key == "" {
			key = "(sin clasificar)"
		}
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(key, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 2,
			})),
			col.New(4).Add(text.New(g.money(kt.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// prebendaRows: detalle de prebendas/auxilios del período.
func (g *MarotoReportGenerator) prebendaRows(items []*entity.Prebenda) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		kind := "prebenda"
		if p.IsAuxilio {
			kind = "auxilio"
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				p.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				p.PastorName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				kind,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(
				g.money(p.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func (g *MarotoReportGenerator) prebendaTotalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("TOTAL PREBENDAS:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(g.money(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// goalsHeaderRow: cabecera de la tabla de metas.
func (g *MarotoReportGenerator) goalsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Campo", 4, align.Left),
		h("Meta", 2, align.Right),
		h("Real", 2, align.Right),
		h("%", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// goalRows: una fila por meta; las metas no alcanzadas se muestran en rojo.
func (g *MarotoReportGenerator) goalRows(goals []reporting.GoalLine) []core.Row {
	labels := map[string]string{
		report.GoalExceeded: "superada",
		report.GoalOnTrack:  "en curso",
		report.GoalBelow:    "por debajo",
	}
	result := make([]core.Row, 0, len(goals))
	for _, gl := range goals {
		statusColor := colorPrimary
		if gl.Status == report.GoalBelow {
			statusColor = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(
				gl.Field,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				g.money(gl.Goal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				g.money(gl.Actual),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				gl.Percentage.StringFixed(2)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				labels[gl.Status],
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea un monto con los separadores del locale y el símbolo
// configurado. Solo presentación; los cálculos siguen en decimal.
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	return g.currency + g.printer.Sprintf("%.2f", d.InexactFloat64())
}
