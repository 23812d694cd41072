package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	ds, err := webUI.DataManager.Dataset()
	if err != nil {
		writeDebugData(w, "Dataset - Load Error", map[string]string{"error": err.Error()})
		return
	}

	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "years":
		data = ds.Years()
		title = "Dataset - Years"
	case "regions":
		data = ds.Regions()
		title = "Dataset - Regions"
	case "columns":
		data = ds.Columns()
		title = "Dataset - Columns"
	case "numeric_columns":
		data = ds.NumericColumns()
		title = "Dataset - Numeric Columns"
	case "summary":
		view, viewErr := webUI.DataManager.FilteredView(ds.DefaultSelection())
		if viewErr != nil {
			writeDebugData(w, "Dataset - Error", map[string]string{"error": viewErr.Error()})
			return
		}
		data = view.Summary()
		title = "Dataset - Default Selection Summary"
	default:
		data = map[string]string{
			"error": "Please use one of the following: years, regions, columns, numeric_columns, summary.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
