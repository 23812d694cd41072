package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"econdash.hanlabs.org/internal/charts"
	"econdash.hanlabs.org/internal/models"
	"econdash.hanlabs.org/internal/utils"
)

func (api *RestAPI) lineChartHandler(w http.ResponseWriter, r *http.Request) {
	ds, err := api.DataManager.Dataset()
	if err != nil {
		api.datasetUnavailableResponse(w, r, err)
		return
	}

	metric, err := models.ParseMetric(utils.ExtractMetricFromParams(r))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"metric": {err.Error()}})
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

	if len(sel.Regions) == 0 || view.Nrow() == 0 {
		api.sendPlaceholder(w, r, models.PlaceholderInfo, "데이터를 먼저 선택해주세요.")
		return
	}

	region := r.URL.Query().Get("region")
	if region == "" {
		api.validationErrorResponse(w, r, map[string][]string{"region": {"missing required parameter region"}})
		return
	}

	series, err := charts.BuildLineSeries(view, region, metric)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if series.Empty() {
		api.sendPlaceholder(w, r, models.PlaceholderWarning, "선택한 지역에 대한 데이터가 없습니다.")
		return
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%s의 연도별 %s 변화 추이", region, metric.Label())
	if err := charts.RenderLine(&buf, series, title, metric.Label()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendPNG(w, r, buf.Bytes())
}
