package niif

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cuifreport.sfcdata.org/internal/cuif"
)

// buildTemplateWorkbook writes an in-memory xlsx with a Cuentas sheet.
func buildTemplateWorkbook(t *testing.T, sheet string, rows [][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	for i, row := range rows {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestLoadAccountTemplateReadsRowsInFileOrder(t *testing.T) {
	workbook := buildTemplateWorkbook(t, SheetName, [][]string{
		{"Cuenta", "Descripción_Cuenta"},
		{"110000", "Disponible"},
		{"210000", "Depósitos"},
		{"310000", "Capital Social"},
	})

	template, err := LoadAccountTemplate(workbook)
	require.NoError(t, err)

	require.Len(t, template, 3)
	assert.Equal(t, cuif.TemplateEntry{Account: "110000", Description: "Disponible"}, template[0])
	assert.Equal(t, cuif.TemplateEntry{Account: "310000", Description: "Capital Social"}, template[2])
}

func TestLoadAccountTemplatePreservesLeadingZeros(t *testing.T) {
	workbook := buildTemplateWorkbook(t, SheetName, [][]string{
		{"Cuenta", "Descripción_Cuenta"},
		{"010500", "Cuenta con cero inicial"},
	})

	template, err := LoadAccountTemplate(workbook)
	require.NoError(t, err)
	assert.Equal(t, "010500", template[0].Account)
}

func TestLoadAccountTemplateIgnoresExtraColumns(t *testing.T) {
	workbook := buildTemplateWorkbook(t, SheetName, [][]string{
		{"Orden", "Cuenta", "Descripción_Cuenta", "Notas"},
		{"1", "110000", "Disponible", "n/a"},
	})

	template, err := LoadAccountTemplate(workbook)
	require.NoError(t, err)
	require.Len(t, template, 1)
	assert.Equal(t, "110000", template[0].Account)
	assert.Equal(t, "Disponible", template[0].Description)
}

func TestLoadAccountTemplateMissingSheetIsValidationError(t *testing.T) {
	workbook := buildTemplateWorkbook(t, "Otra", [][]string{
		{"Cuenta", "Descripción_Cuenta"},
		{"110000", "Disponible"},
	})

	_, err := LoadAccountTemplate(workbook)

	var validationErr *cuif.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestLoadAccountTemplateMissingHeadersIsValidationError(t *testing.T) {
	workbook := buildTemplateWorkbook(t, SheetName, [][]string{
		{"Codigo", "Nombre"},
		{"110000", "Disponible"},
	})

	_, err := LoadAccountTemplate(workbook)

	var validationErr *cuif.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestLoadAccountTemplateRowWithoutCodeIsIntegrityError(t *testing.T) {
	workbook := buildTemplateWorkbook(t, SheetName, [][]string{
		{"Cuenta", "Descripción_Cuenta"},
		{"", "Huérfana"},
	})

	_, err := LoadAccountTemplate(workbook)

	var integrityErr *cuif.DataIntegrityError
	require.True(t, errors.As(err, &integrityErr))
}

func TestLoadAccountTemplateNotAWorkbookIsValidationError(t *testing.T) {
	_, err := LoadAccountTemplate(bytes.NewReader([]byte("not an xlsx")))

	var validationErr *cuif.ValidationError
	require.True(t, errors.As(err, &validationErr))
}
