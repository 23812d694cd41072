package restapi

import (
	"net/http"

	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/utils"
)

// selectionFromRequest resolves the years/regions query parameters against
// the dataset defaults: an absent parameter means the default selection
// (all years, regions minus the aggregate sentinel), a present-but-empty
// parameter means an explicitly empty selection.
func selectionFromRequest(r *http.Request, ds *dataset.Dataset) (dataset.Selection, map[string][]string) {
	query := r.URL.Query()
	defaults := ds.DefaultSelection()
	sel := dataset.Selection{}

	years, present, err := utils.IntListParam(query, "years")
	if err != nil {
		return sel, map[string][]string{"years": {err.Error()}}
	}
	if present {
		sel.Years = years
	} else {
		sel.Years = defaults.Years
	}

	regions, present := utils.StringListParam(query, "regions")
	if present {
		sel.Regions = regions
	} else {
		sel.Regions = defaults.Regions
	}

	return sel.Normalize(), nil
}
