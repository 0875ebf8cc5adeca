// Package report lays out a reconciled CUIF table as an addressed grid of
// cells and serializes that grid to a spreadsheet.
package report

import (
	"time"

	"cuifreport.sfcdata.org/internal/cuif"
)

// sheetNameSuffix is the fixed literal appended after the entity sheet code
// and the ddmmyyyy report date. The composed name stays well under the
// 31-character sheet-name limit of the xlsx format.
const sheetNameSuffix = "g1m0cie"

// dataStartRow is the first row of the data table, leaving the metadata
// header block and a gap above it untouched.
const dataStartRow = 9

// Cell is one addressed value of the output grid. Col and Row are 1-based,
// matching spreadsheet addressing.
type Cell struct {
	Col   int
	Row   int
	Value any
}

// Layout is the finished report grid: a single named sheet and its cells in
// write order.
type Layout struct {
	SheetName string
	Cells     []Cell
}

// Params carries the report metadata rendered into the fixed header block.
type Params struct {
	Entity     cuif.EntityType
	ReportDate time.Time
	Unit       cuif.UnitScale
}

// SheetName composes the sheet name for an entity type and report date.
func SheetName(entity cuif.EntityType, reportDate time.Time) string {
	return entity.SheetCode + reportDate.Format("02012006") + sheetNameSuffix
}

// Filename composes the download filename for an entity type and report date.
func Filename(entity cuif.EntityType, reportDate time.Time) string {
	return entity.SheetCode + reportDate.Format("02012006") + "n.xlsx"
}

// BuildLayout renders the reconciled table plus the metadata header into a
// grid. The header block occupies rows 2-5; the data table starts at
// dataStartRow, column A, with the header row cuenta, nombre_cuenta and then
// each entity column in the table's established order.
func BuildLayout(table *cuif.ReconciledTable, p Params) *Layout {
	layout := &Layout{SheetName: SheetName(p.Entity, p.ReportDate)}

	layout.add(1, 2, "Tipo de Entidad:")
	layout.add(2, 2, p.Entity.Code+" "+p.Entity.Label)
	layout.add(1, 3, "Fecha de Informe:")
	layout.add(2, 3, p.ReportDate.Format("02/01/2006"))
	layout.add(1, 4, "Moneda:")
	layout.add(2, 4, "0 Total")
	layout.add(1, 5, "Rango de Valores:")
	layout.add(2, 5, p.Unit.Divisor.String())
	layout.add(3, 5, p.Unit.Label)

	layout.add(1, dataStartRow, "cuenta")
	layout.add(2, dataStartRow, "nombre_cuenta")
	for i, column := range table.Columns {
		layout.add(3+i, dataStartRow, column)
	}

	for i, row := range table.Rows {
		r := dataStartRow + 1 + i
		layout.add(1, r, row.Account)
		layout.add(2, r, row.Description)
		for j, v := range row.Values {
			layout.add(3+j, r, v)
		}
	}

	return layout
}

func (l *Layout) add(col, row int, value any) {
	l.Cells = append(l.Cells, Cell{Col: col, Row: row, Value: value})
}
