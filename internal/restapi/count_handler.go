package restapi

import (
	"net/http"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/utils"
)

// countHandler answers the pre-flight record count for an entity type and
// date range, with the same filter the report download will use.
func (api *RestAPI) countHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	entityType := query.Get("entityType")
	if _, ok := api.Catalog.EntityType(entityType); !ok {
		api.validationErrorResponse(w, "unknown entity type")
		return
	}

	from, err := utils.ParseDate(query.Get("from"))
	if err != nil {
		api.validationErrorResponse(w, "from: "+err.Error())
		return
	}
	to, err := utils.ParseDate(query.Get("to"))
	if err != nil {
		api.validationErrorResponse(w, "to: "+err.Error())
		return
	}
	if err := utils.ValidateDateRange(from, to); err != nil {
		api.validationErrorResponse(w, err.Error())
		return
	}

	criteria := cuif.FilterCriteria{EntityType: entityType, From: from, To: to}
	count, err := api.Dataset.Count(r.Context(), criteria)
	if err != nil {
		api.pipelineErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, struct {
		Count int `json:"count"`
	}{Count: count})
}
