// Package webui serves the dashboard page and a debug view of the loaded
// dataset. The page is a single template plus a small amount of client JS
// that re-fetches the JSON and PNG fragments whenever a filter widget
// changes, so every panel stays a pure function of the current widget state.
package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"econdash.hanlabs.org/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/", http.HandlerFunc(webUI.dashboardHandler))
	router.Handler(http.MethodGet, "/debug", http.HandlerFunc(webUI.debugIndexHandler))
}
