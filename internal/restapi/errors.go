package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/socrata"
)

func (api *RestAPI) errorResponse(w http.ResponseWriter, status int, text string) {
	response := ResponseModel{
		Code: status,
		Text: text,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}

// serverErrorResponse sends a 500 Internal Server Error response.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.errorResponse(w, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with the
// validation message.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, message string) {
	api.errorResponse(w, http.StatusBadRequest, message)
}

// pipelineErrorResponse maps the pipeline's error taxonomy onto status codes:
// validation failures are the caller's fault, remote query failures are the
// upstream's, integrity failures are unprocessable source data. Anything else
// is a server error.
func (api *RestAPI) pipelineErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *cuif.ValidationError
	var remoteErr *socrata.RemoteQueryError
	var integrityErr *cuif.DataIntegrityError

	switch {
	case errors.As(err, &validationErr):
		api.validationErrorResponse(w, validationErr.Error())
	case errors.As(err, &remoteErr):
		api.Logger.Error("remote dataset failure", "error", err, "status", remoteErr.StatusCode)
		api.errorResponse(w, http.StatusBadGateway, "remote dataset query failed")
	case errors.As(err, &integrityErr):
		api.Logger.Error("data integrity failure", "error", err)
		api.errorResponse(w, http.StatusUnprocessableEntity, integrityErr.Error())
	default:
		api.serverErrorResponse(w, r, err)
	}
}
