// Package dataset loads the economic-activity CSV into an immutable
// in-memory table and derives filtered views, descriptive statistics and
// correlation matrices from it. The table is loaded once per process and
// never mutated; all filtering produces transient views.
package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	// YearColumn and RegionColumn are the two dimension columns of the
	// source file.
	YearColumn   = "년도"
	RegionColumn = "지역"

	// AggregateRegion is the sentinel label of the synthetic "total" rows.
	// It is excluded from the default region selection but included when
	// selected explicitly.
	AggregateRegion = "계"
)

// requiredColumns must all be present in the source file; the metric columns
// must be numeric. Additional numeric columns are tolerated and participate
// in the summary and correlation stages.
var requiredColumns = []string{
	YearColumn,
	RegionColumn,
	"경제활동인구 (천명)",
	"취업자 (천명)",
	"실업자 (천명)",
}

// Dataset is the loaded, immutable table plus the distinct dimension values
// derived from it at load time.
type Dataset struct {
	df          dataframe.DataFrame
	numericCols []string
	years       []int
	regions     []string
}

// Load reads the CSV at path. A missing file is reported as an error, not a
// crash; callers surface it to the user and suppress the dashboard body.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, df.Err)
	}
	return New(df)
}

// FromRecords builds a Dataset from in-memory records (header row first).
// Used by tests and tooling.
func FromRecords(records [][]string) (*Dataset, error) {
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, fmt.Errorf("load records: %w", df.Err)
	}
	return New(df)
}

// New validates the schema and derives the distinct years, regions and
// numeric columns. Validation fails fast here so later stages can trust the
// column set.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if err := validateSchema(df); err != nil {
		return nil, err
	}

	years, err := distinctYears(df)
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		df:          df,
		numericCols: numericColumns(df),
		years:       years,
		regions:     distinctRegions(df),
	}
	return d, nil
}

func validateSchema(df dataframe.DataFrame) error {
	types := columnTypes(df)
	for _, col := range requiredColumns {
		typ, ok := types[col]
		if !ok {
			return fmt.Errorf("dataset is missing required column %q", col)
		}
		if col == RegionColumn {
			continue
		}
		if typ != series.Int && typ != series.Float {
			return fmt.Errorf("dataset column %q must be numeric, got %s", col, typ)
		}
	}
	return nil
}

func columnTypes(df dataframe.DataFrame) map[string]series.Type {
	names := df.Names()
	types := df.Types()
	m := make(map[string]series.Type, len(names))
	for i, name := range names {
		m[name] = types[i]
	}
	return m
}

// numericColumns returns the Int and Float columns in source order. The year
// column counts as numeric, matching the correlation stage's behavior.
func numericColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	types := df.Types()
	var cols []string
	for i, name := range names {
		if types[i] == series.Int || types[i] == series.Float {
			cols = append(cols, name)
		}
	}
	return cols
}

func distinctYears(df dataframe.DataFrame) ([]int, error) {
	values, err := df.Col(YearColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("read %s column: %w", YearColumn, err)
	}
	seen := make(map[int]bool, len(values))
	var years []int
	for _, y := range values {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

func distinctRegions(df dataframe.DataFrame) []string {
	records := df.Col(RegionColumn).Records()
	seen := make(map[string]bool, len(records))
	var regions []string
	for _, r := range records {
		if !seen[r] {
			seen[r] = true
			regions = append(regions, r)
		}
	}
	sort.Strings(regions)
	return regions
}

// Nrow returns the number of rows in the full dataset.
func (d *Dataset) Nrow() int {
	return d.df.Nrow()
}

// Columns returns the column headers in source order.
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// NumericColumns returns the numeric column headers in source order.
func (d *Dataset) NumericColumns() []string {
	return append([]string(nil), d.numericCols...)
}

// Years returns the sorted distinct years present in the dataset.
func (d *Dataset) Years() []int {
	return append([]int(nil), d.years...)
}

// Regions returns the sorted distinct region labels, including the
// aggregate sentinel when present.
func (d *Dataset) Regions() []string {
	return append([]string(nil), d.regions...)
}

// DefaultRegions returns the regions selected by default: everything except
// the aggregate sentinel.
func (d *Dataset) DefaultRegions() []string {
	var regions []string
	for _, r := range d.regions {
		if r != AggregateRegion {
			regions = append(regions, r)
		}
	}
	return regions
}
