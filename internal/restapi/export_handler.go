package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/logging"
)

const exportSheet = "경제활동"

// exportHandler streams the current filtered view as an XLSX workbook.
// Nothing is written to disk; the workbook exists only for the duration of
// the response.
func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
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

	buf, err := buildWorkbook(view, api.Logger)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="economic_activity.xlsx"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.Logger.Error("failed to stream export workbook", "error", err)
	}
}

// buildWorkbook serializes the view into an in-memory XLSX workbook. The
// workbook is built completely before any response bytes go out, so a
// failure here can still become a 500.
func buildWorkbook(view *dataset.View, logger *slog.Logger) (buf *bytes.Buffer, err error) {
	f := excelize.NewFile()
	defer logging.HandleDeferredError(&err, f.Close, logger, "close export workbook")

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := toCellValues(view.Columns())
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range view.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := toCellValues(row)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// toCellValues converts row strings to typed cell values so numeric columns
// stay numeric in the workbook.
func toCellValues(row []string) []interface{} {
	values := make([]interface{}, len(row))
	for i, raw := range row {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			values[i] = n
		} else {
			values[i] = raw
		}
	}
	return values
}
