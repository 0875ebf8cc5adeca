package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/niif"
)

func buildTemplateBytes(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", niif.SheetName))

	rows := [][]string{
		{"Cuenta", "Descripción_Cuenta"},
		{"110000", "Disponible"},
		{"210000", "Depósitos"},
		{"310000", "Capital Social"},
	}
	for i, row := range rows {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(niif.SheetName, ref, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func buildReportForm(t *testing.T, fields map[string]string, template []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if template != nil {
		part, err := writer.CreateFormFile("template", "plantilla.xlsx")
		require.NoError(t, err)
		_, err = part.Write(template)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func reportFixtureUpstream() http.HandlerFunc {
	records := []cuif.RawRecord{
		{Cuenta: "110000", NombreCuenta: "fuente", CodigoEntidad: "1", NombreEntidad: "Banco Uno", Valor: "100"},
		{Cuenta: "110000", NombreCuenta: "fuente", CodigoEntidad: "2", NombreEntidad: "Banco Dos", Valor: "200"},
		{Cuenta: "210000", NombreCuenta: "fuente", CodigoEntidad: "1", NombreEntidad: "Banco Uno", Valor: "300"},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("$select") == "count(*)" {
			_ = json.NewEncoder(w).Encode([]map[string]string{{"count": strconv.Itoa(len(records))}})
			return
		}
		if q.Get("$offset") == "0" {
			_ = json.NewEncoder(w).Encode(records)
			return
		}
		_, _ = w.Write([]byte("[]"))
	}
}

func TestReportHandlerProducesDownloadableWorkbook(t *testing.T) {
	_, server := createTestAPI(t, reportFixtureUpstream())

	form, contentType := buildReportForm(t, map[string]string{
		"entityType": "ESTABLECIMIENTOS BANCARIOS",
		"from":       "2025-03-01",
		"to":         "2025-03-31",
		"unit":       "Sin Unidades",
	}, buildTemplateBytes(t))

	resp, err := http.Post(server.URL+"/api/cuif/report", contentType, form)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "000101032025n.xlsx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, "000101032025g1m0cie", sheets[0])

	// Description comes from the template, not the source nombre_cuenta.
	description, err := workbook.GetCellValue(sheets[0], "B10")
	require.NoError(t, err)
	assert.Equal(t, "Disponible", description)

	// Template-only account reconciles to a full row of zeros.
	zeroCell, err := workbook.GetCellValue(sheets[0], "C12")
	require.NoError(t, err)
	assert.Equal(t, "0", zeroCell)
}

func TestReportHandlerRequiresTemplateFile(t *testing.T) {
	_, server := createTestAPI(t, noUpstream(t))

	form, contentType := buildReportForm(t, map[string]string{
		"entityType": "ESTABLECIMIENTOS BANCARIOS",
		"from":       "2025-03-01",
		"to":         "2025-03-31",
		"unit":       "Sin Unidades",
	}, nil)

	resp, err := http.Post(server.URL+"/api/cuif/report", contentType, form)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportHandlerRejectsInvertedDateRangeBeforeUpstream(t *testing.T) {
	_, server := createTestAPI(t, noUpstream(t))

	form, contentType := buildReportForm(t, map[string]string{
		"entityType": "ESTABLECIMIENTOS BANCARIOS",
		"from":       "2025-03-31",
		"to":         "2025-03-01",
		"unit":       "Sin Unidades",
	}, buildTemplateBytes(t))

	resp, err := http.Post(server.URL+"/api/cuif/report", contentType, form)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportHandlerMapsRemoteFailureToBadGateway(t *testing.T) {
	_, server := createTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	form, contentType := buildReportForm(t, map[string]string{
		"entityType": "ESTABLECIMIENTOS BANCARIOS",
		"from":       "2025-03-01",
		"to":         "2025-03-31",
		"unit":       "Sin Unidades",
	}, buildTemplateBytes(t))

	resp, err := http.Post(server.URL+"/api/cuif/report", contentType, form)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
