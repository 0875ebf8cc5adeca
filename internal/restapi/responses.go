package restapi

import (
	"encoding/json"
	"net/http"
)

// ResponseModel is the JSON envelope shared by every non-download endpoint.
type ResponseModel struct {
	Code int    `json:"code"`
	Data any    `json:"data"`
	Text string `json:"text"`
}

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, data any) {
	response := ResponseModel{
		Code: http.StatusOK,
		Data: data,
		Text: "OK",
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "error", err)
	}
}
