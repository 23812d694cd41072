package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"econdash.hanlabs.org/internal/charts"
	"econdash.hanlabs.org/internal/models"
	"econdash.hanlabs.org/internal/utils"
)

func (api *RestAPI) barChartHandler(w http.ResponseWriter, r *http.Request) {
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

	if len(sel.Years) == 0 || view.Nrow() == 0 {
		api.sendPlaceholder(w, r, models.PlaceholderInfo, "데이터를 먼저 선택해주세요.")
		return
	}

	year, err := utils.IntParam(r.URL.Query(), "year")
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"year": {err.Error()}})
		return
	}

	series, err := charts.BuildBarSeries(view, year, metric)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if series.Empty() {
		api.sendPlaceholder(w, r, models.PlaceholderWarning, "선택한 연도에 대한 데이터가 없습니다.")
		return
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%d년 지역별 %s", year, metric.Label())
	if err := charts.RenderBar(&buf, series, title, metric.Label()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendPNG(w, r, buf.Bytes())
}
