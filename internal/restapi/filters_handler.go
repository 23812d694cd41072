package restapi

import (
	"net/http"

	"econdash.hanlabs.org/internal/models"
)

func (api *RestAPI) filtersHandler(w http.ResponseWriter, r *http.Request) {
	ds, err := api.DataManager.Dataset()
	if err != nil {
		api.datasetUnavailableResponse(w, r, err)
		return
	}

	metrics := make([]models.MetricOption, 0, len(models.Metrics()))
	for _, m := range models.Metrics() {
		metrics = append(metrics, models.MetricOption{Slug: m.Slug(), Label: m.Label()})
	}

	payload := models.FiltersPayload{
		Years:          ds.Years(),
		Regions:        ds.Regions(),
		DefaultYears:   ds.Years(),
		DefaultRegions: ds.DefaultRegions(),
		Metrics:        metrics,
	}
	api.sendResponse(w, r, models.NewOKResponse(payload))
}
