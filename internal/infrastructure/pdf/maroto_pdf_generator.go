// Package pdf genera la hoja salarial mensual (folha de salários) en A4 apaisado.
//
// Layout:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa                     │  FOLHA DE SALÁRIOS  MM/AAAA │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Funcionário | Base | Subsídios | Rendimentos | INSS | ... │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TOTALES: Σ rendimentos / Σ descontos / Σ líquido                 │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/pkg/money"
)

var _ payroll.SalarySheetGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa payroll.SalarySheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSalarySheet genera el PDF del período y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalarySheet(sheet payroll.SalarySheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("Folha de Salários %02d/%d", sheet.Month, sheet.Year), true).
		WithAuthor(sheet.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(sheet.Entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sheet.Entries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sheet payroll.SalarySheet) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(sheet.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d funcionário(s)", len(sheet.Entries)), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FOLHA DE SALÁRIOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%02d/%d", sheet.Month, sheet.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// columnas: nombre ocupa 3 de 12, el resto 1 cada una (9 columnas numéricas).
var sheetColumns = []struct {
	label string
	size  int
	value func(e *entity.PayrollEntry) decimal.Decimal
}{
	{"Base", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.BaseSalary }},
	{"Subsídios", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.TotalSubsidies }},
	{"Bónus", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.Bonus }},
	{"Comissões", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.PersonalCommission.Add(e.TeamCommission) }},
	{"Rendimentos", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.TotalIncome }},
	{"INSS", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.INSS }},
	{"Empréstimos", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.Loans }},
	{"Descontos", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.TotalDeductions }},
	{"Líquido", 1, func(e *entity.PayrollEntry) decimal.Decimal { return e.NetSalary }},
}

func tableHeaderRow() core.Row {
	cols := []core.Col{col.New(3).Add(text.New("Funcionário", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
	}))}
	for _, c := range sheetColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableDetailRows(entries []*entity.PayrollEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		cols := []core.Col{col.New(3).Add(text.New(e.EmployeeName, props.Text{Size: 8, Top: 1, Left: 1}))}
		for _, c := range sheetColumns {
			cols = append(cols, col.New(c.size).Add(text.New(
				amount(c.value(e)), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1},
			)))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

func totalsRow(entries []*entity.PayrollEntry) core.Row {
	var income, deductions, net decimal.Decimal
	for _, e := range entries {
		income = income.Add(e.TotalIncome)
		deductions = deductions.Add(e.TotalDeductions)
		net = net.Add(e.NetSalary)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total rendimentos:"),
			label("Total descontos:"),
			text.New("TOTAL LÍQUIDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
			}),
		),
		col.New(3).Add(
			value(money.Format(income)),
			value(money.Format(deductions)),
			text.New(money.Format(net), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// amount sin símbolo para no saturar las columnas.
func amount(d decimal.Decimal) string {
	return money.Format(d)[len(money.Symbol)+1:]
}
