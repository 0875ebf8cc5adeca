package restapi

import (
	"fmt"
	"net/http"
	"strconv"

	"cuifreport.sfcdata.org/internal/logging"
	"cuifreport.sfcdata.org/internal/niif"
	"cuifreport.sfcdata.org/internal/pipeline"
	"cuifreport.sfcdata.org/internal/report"
	"cuifreport.sfcdata.org/internal/utils"
)

// maxTemplateSize bounds the uploaded template workbook.
const maxTemplateSize = 32 << 20

// reportHandler runs the full pipeline for a multipart form request and
// answers with the xlsx report as an attachment.
func (api *RestAPI) reportHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTemplateSize); err != nil {
		api.validationErrorResponse(w, "expected multipart form: "+err.Error())
		return
	}

	from, err := utils.ParseDate(r.FormValue("from"))
	if err != nil {
		api.validationErrorResponse(w, "from: "+err.Error())
		return
	}
	to, err := utils.ParseDate(r.FormValue("to"))
	if err != nil {
		api.validationErrorResponse(w, "to: "+err.Error())
		return
	}
	if err := utils.ValidateDateRange(from, to); err != nil {
		api.validationErrorResponse(w, err.Error())
		return
	}

	file, _, err := r.FormFile("template")
	if err != nil {
		api.validationErrorResponse(w, "template workbook is required")
		return
	}
	defer logging.SafeCloseWithLogging(file, api.Logger, "template_upload")

	template, err := niif.LoadAccountTemplate(file)
	if err != nil {
		api.pipelineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context())

	result, err := api.Pipeline.Run(r.Context(), pipeline.Request{
		EntityType: r.FormValue("entityType"),
		From:       from,
		To:         to,
		Unit:       r.FormValue("unit"),
		Template:   template,
	})
	if err != nil {
		api.pipelineErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	if _, err := w.Write(result.Data); err != nil {
		logger.Error("failed to write report body", "error", err)
	}
}
