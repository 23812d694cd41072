package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the dashboard API endpoints. Chart endpoints carry the
// metric as a path parameter so unknown metrics are rejected at the boundary.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/dashboard/filters.json", http.HandlerFunc(api.filtersHandler))
	router.Handler(http.MethodGet, "/api/dashboard/data.json", http.HandlerFunc(api.dataHandler))
	router.Handler(http.MethodGet, "/api/dashboard/summary.json", http.HandlerFunc(api.summaryHandler))
	router.Handler(http.MethodGet, "/api/dashboard/correlation.json", http.HandlerFunc(api.correlationHandler))
	router.Handler(http.MethodGet, "/api/dashboard/export.xlsx", http.HandlerFunc(api.exportHandler))
	router.Handler(http.MethodGet, "/api/charts/bar/:metric", http.HandlerFunc(api.barChartHandler))
	router.Handler(http.MethodGet, "/api/charts/line/:metric", http.HandlerFunc(api.lineChartHandler))
	router.Handler(http.MethodGet, "/api/charts/heatmap.png", http.HandlerFunc(api.heatmapHandler))
}
