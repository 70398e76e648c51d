// Package xlsx exporta el historial de ventas a una hoja Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

var _ sales.SalesExporter = (*SalesExporter)(nil)

const sheetName = "Vendas"

var headers = []string{"Data", "Cliente", "Tipo", "Estado", "Total (MT)", "ID"}

// SalesExporter implementa sales.SalesExporter con excelize.
type SalesExporter struct{}

// NewSalesExporter construye el exportador.
func NewSalesExporter() *SalesExporter { return &SalesExporter{} }

// ExportSales escribe una fila por venta tras la cabecera y devuelve el .xlsx en memoria.
func (e *SalesExporter) ExportSales(rows []*entity.SaleSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", last, bold)
	_ = f.SetColWidth(sheetName, "B", "B", 32)
	_ = f.SetColWidth(sheetName, "F", "F", 38)

	for i, r := range rows {
		total, _ := r.Total.Round(2).Float64()
		values := []any{r.Date.Format("2006-01-02"), r.ClientName, r.Type, r.Status, total, r.ID}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
