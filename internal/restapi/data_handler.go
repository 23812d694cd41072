package restapi

import (
	"net/http"

	"econdash.hanlabs.org/internal/models"
)

func (api *RestAPI) dataHandler(w http.ResponseWriter, r *http.Request) {
	ds, err := api.DataManager.Dataset()
	if err != nil {
		api.datasetUnavailableResponse(w, r, err)
		return
	}

	sel, fieldErrors := selectionFromRequest(r, ds)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view, err := api.DataManager.FilteredView(sel)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	payload := models.TablePayload{
		Count:   view.Nrow(),
		Columns: view.Columns(),
		Rows:    view.Rows(),
	}
	api.sendResponse(w, r, models.NewOKResponse(payload))
}
