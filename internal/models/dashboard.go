package models

// MetricOption describes one selectable metric for the chart panels.
type MetricOption struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// FiltersPayload lists the selectable filter values and their defaults. The
// aggregate "계" region is present in Regions but excluded from
// DefaultRegions; selecting it explicitly includes the aggregate rows.
type FiltersPayload struct {
	Years          []int          `json:"years"`
	Regions        []string       `json:"regions"`
	DefaultYears   []int          `json:"defaultYears"`
	DefaultRegions []string       `json:"defaultRegions"`
	Metrics        []MetricOption `json:"metrics"`
}

// TablePayload is the filtered table view.
type TablePayload struct {
	Count   int        `json:"count"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnSummary holds the descriptive statistics of one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// SummaryPayload is the describe-style statistics panel for the filtered
// view. Columns is empty when the filtered set has no rows.
type SummaryPayload struct {
	Count   int             `json:"count"`
	Columns []ColumnSummary `json:"columns"`
}

// CorrelationPayload is the Pearson correlation matrix over the numeric
// columns of the filtered view. Matrix[i][j] is the correlation of
// Columns[i] with Columns[j]; the diagonal is exactly 1.
type CorrelationPayload struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}
