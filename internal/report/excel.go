package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the serialized workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Serializer turns a finished layout into download bytes.
type Serializer interface {
	Serialize(layout *Layout) ([]byte, error)
}

// ExcelSerializer writes the layout to a single-sheet xlsx workbook.
type ExcelSerializer struct{}

func (ExcelSerializer) Serialize(layout *Layout) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", layout.SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet %q: %w", layout.SheetName, err)
	}

	for _, cell := range layout.Cells {
		ref, err := excelize.CoordinatesToCellName(cell.Col, cell.Row)
		if err != nil {
			return nil, fmt.Errorf("addressing cell (%d,%d): %w", cell.Col, cell.Row, err)
		}
		if err := f.SetCellValue(layout.SheetName, ref, cell.Value); err != nil {
			return nil, fmt.Errorf("writing cell %s: %w", ref, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
