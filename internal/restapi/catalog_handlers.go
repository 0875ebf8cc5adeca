package restapi

import (
	"net/http"
)

type entityTypeEntry struct {
	Label     string `json:"label"`
	Code      string `json:"code"`
	SheetCode string `json:"sheetCode"`
}

type unitEntry struct {
	Name    string `json:"name"`
	Divisor string `json:"divisor"`
	Label   string `json:"label"`
}

// entityTypesHandler lists the closed entity-type enumeration, in catalog
// order, so callers can populate a selector without hardcoding labels.
func (api *RestAPI) entityTypesHandler(w http.ResponseWriter, r *http.Request) {
	types := api.Catalog.EntityTypes()
	entries := make([]entityTypeEntry, 0, len(types))
	for _, e := range types {
		entries = append(entries, entityTypeEntry{Label: e.Label, Code: e.Code, SheetCode: e.SheetCode})
	}
	api.sendResponse(w, r, entries)
}

// unitsHandler lists the unit-scale table. Divisors are serialized as text;
// the largest is 10^12 and JSON numbers are best kept out of it.
func (api *RestAPI) unitsHandler(w http.ResponseWriter, r *http.Request) {
	units := api.Catalog.Units()
	entries := make([]unitEntry, 0, len(units))
	for _, u := range units {
		entries = append(entries, unitEntry{Name: u.Name, Divisor: u.Divisor.String(), Label: u.Label})
	}
	api.sendResponse(w, r, entries)
}
