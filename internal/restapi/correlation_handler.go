package restapi

import (
	"net/http"

	"econdash.hanlabs.org/internal/models"
)

func (api *RestAPI) correlationHandler(w http.ResponseWriter, r *http.Request) {
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

	if view.Nrow() == 0 {
		api.sendPlaceholder(w, r, models.PlaceholderInfo, "데이터를 먼저 선택해주세요.")
		return
	}

	corr, ok := view.Correlation()
	if !ok {
		api.sendPlaceholder(w, r, models.PlaceholderWarning, "상관관계를 계산하기에 숫자 열이 부족합니다.")
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(corr))
}
