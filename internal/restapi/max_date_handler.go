package restapi

import (
	"net/http"
)

// maxDateHandler reports the maximum cutoff date available upstream. The
// client degrades to absence on any failure, so this endpoint answers 200
// with a null date rather than erroring when the upstream is unreachable.
func (api *RestAPI) maxDateHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		MaxCutoffDate *string `json:"maxCutoffDate"`
	}{}

	if date, ok := api.Dataset.MaxCutoffDate(r.Context()); ok {
		formatted := date.Format("2006-01-02")
		data.MaxCutoffDate = &formatted
	}

	api.sendResponse(w, r, data)
}
