// Package restapi exposes the CUIF report service over HTTP: catalog
// listings, the max-cutoff-date and pre-flight count queries, and report
// generation as an xlsx download.
package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"cuifreport.sfcdata.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance backed by the application's
// dependencies.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

// Routes builds the router with request logging applied to every endpoint.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/cuif/entity-types.json", api.entityTypesHandler)
	router.HandlerFunc(http.MethodGet, "/api/cuif/units.json", api.unitsHandler)
	router.HandlerFunc(http.MethodGet, "/api/cuif/max-date.json", api.maxDateHandler)
	router.HandlerFunc(http.MethodGet, "/api/cuif/count.json", api.countHandler)
	router.HandlerFunc(http.MethodPost, "/api/cuif/report", api.reportHandler)

	return NewRequestLoggingMiddleware(api.Logger)(router)
}
