// Package niif reads the caller-supplied NIIF chart-of-accounts template
// workbook that defines the canonical account universe of the report.
package niif

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"cuifreport.sfcdata.org/internal/cuif"
)

// SheetName is the fixed sheet the template must carry.
const SheetName = "Cuentas"

const (
	accountHeader     = "Cuenta"
	descriptionHeader = "Descripción_Cuenta"
)

// LoadAccountTemplate reads the "Cuentas" sheet and returns the canonical
// accounts in file order. Account codes stay text so leading zeros survive.
// A missing sheet or missing header columns is a ValidationError; a data row
// with a description but no account code is a DataIntegrityError.
func LoadAccountTemplate(r io.Reader) ([]cuif.TemplateEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &cuif.ValidationError{Field: "template", Message: "not a readable workbook: " + err.Error()}
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil || len(rows) == 0 {
		return nil, &cuif.ValidationError{Field: "template", Message: "workbook has no " + SheetName + " sheet"}
	}

	accountCol, descriptionCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case accountHeader:
			accountCol = i
		case descriptionHeader:
			descriptionCol = i
		}
	}
	if accountCol < 0 || descriptionCol < 0 {
		return nil, &cuif.ValidationError{
			Field:   "template",
			Message: SheetName + " sheet must have " + accountHeader + " and " + descriptionHeader + " columns",
		}
	}

	var entries []cuif.TemplateEntry
	for _, row := range rows[1:] {
		account := cellAt(row, accountCol)
		description := cellAt(row, descriptionCol)
		if account == "" && description == "" {
			continue
		}
		if account == "" {
			return nil, &cuif.DataIntegrityError{
				Account: account,
				Message: "template row " + description + " has no account code",
			}
		}
		entries = append(entries, cuif.TemplateEntry{Account: account, Description: description})
	}

	if len(entries) == 0 {
		return nil, &cuif.ValidationError{Field: "template", Message: SheetName + " sheet has no account rows"}
	}
	return entries, nil
}

// cellAt tolerates the ragged rows excelize returns for trailing empty cells.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
