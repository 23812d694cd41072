package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"econdash.hanlabs.org/internal/models"
)

// Summary computes the descriptive statistics of every numeric column in the
// view. An empty view yields a zero-count summary with no column rows, so
// nothing non-finite ever reaches the wire.
func (v *View) Summary() models.SummaryPayload {
	payload := models.SummaryPayload{
		Count:   v.Nrow(),
		Columns: []models.ColumnSummary{},
	}
	if v.Nrow() == 0 {
		return payload
	}

	for _, col := range v.numericCols {
		s := v.df.Col(col)
		payload.Columns = append(payload.Columns, models.ColumnSummary{
			Column: col,
			Count:  s.Len(),
			Mean:   s.Mean(),
			Std:    s.StdDev(),
			Min:    s.Min(),
			Q1:     s.Quantile(0.25),
			Median: s.Median(),
			Q3:     s.Quantile(0.75),
			Max:    s.Max(),
		})
	}
	return payload
}

// Correlation computes the pairwise Pearson correlation matrix over the
// numeric columns. The diagonal is exactly 1; a pair involving a
// zero-variance column has no defined correlation and is reported as 0.
// ok is false when fewer than two numeric columns exist, in which case no
// computation is performed.
func (v *View) Correlation() (models.CorrelationPayload, bool) {
	cols := v.numericCols
	if len(cols) < 2 {
		return models.CorrelationPayload{}, false
	}

	values := make([][]float64, len(cols))
	for i, col := range cols {
		values[i] = v.Floats(col)
	}

	matrix := make([][]float64, len(cols))
	for i := range cols {
		matrix[i] = make([]float64, len(cols))
		matrix[i][i] = 1
		for j := 0; j < i; j++ {
			r := stat.Correlation(values[i], values[j], nil)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return models.CorrelationPayload{
		Columns: append([]string(nil), cols...),
		Matrix:  matrix,
	}, true
}
