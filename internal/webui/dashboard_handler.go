package webui

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed dashboard.html
var dashboardFS embed.FS

type dashboardData struct {
	Title string
	// Error is the load failure message. When set, the dashboard body is
	// suppressed and only the error banner renders.
	Error string
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(dashboardFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := dashboardData{Title: "대한민국 경제활동 데이터 분석"}
	if _, loadErr := webUI.DataManager.Dataset(); loadErr != nil {
		data.Error = loadErr.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		webUI.Logger.Error("failed to render dashboard", "error", err)
	}
}
