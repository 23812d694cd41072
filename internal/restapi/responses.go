package restapi

import (
	"encoding/json"
	"net/http"

	"econdash.hanlabs.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendPlaceholder reports a chart panel's soft "nothing to draw" state. It
// is a 200 with a JSON body instead of a PNG; the dashboard renders it as an
// informational or warning message, never as an error.
func (api *RestAPI) sendPlaceholder(w http.ResponseWriter, r *http.Request, kind, text string) {
	response := models.ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: models.ResponseCurrentTime(),
		Data:        models.Placeholder{Kind: kind, Text: text},
		Text:        text,
		Version:     2,
	}
	api.sendResponse(w, r, response)
}

// sendPNG writes a rendered chart with the correct content type.
func (api *RestAPI) sendPNG(w http.ResponseWriter, r *http.Request, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		api.Logger.Error("failed to write chart response", "error", err)
	}
}
