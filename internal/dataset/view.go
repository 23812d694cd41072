package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// View is a transient row subset of the dataset. Views are cheap, derived
// and never persisted.
type View struct {
	df          dataframe.DataFrame
	numericCols []string
}

// Filter derives the view of rows whose year is in the selected year set AND
// whose region is in the selected region set. An empty selection on either
// axis yields an empty view.
func (d *Dataset) Filter(sel Selection) (*View, error) {
	sel = sel.Normalize()

	if len(sel.Years) == 0 || len(sel.Regions) == 0 {
		empty := d.df.Subset([]int{})
		if empty.Err != nil {
			return nil, fmt.Errorf("derive empty view: %w", empty.Err)
		}
		return &View{df: empty, numericCols: d.numericCols}, nil
	}

	filtered := d.df.FilterAggregation(dataframe.And,
		dataframe.F{Colname: YearColumn, Comparator: series.In, Comparando: sel.Years},
		dataframe.F{Colname: RegionColumn, Comparator: series.In, Comparando: sel.Regions},
	)
	if filtered.Err != nil {
		return nil, fmt.Errorf("filter dataset: %w", filtered.Err)
	}
	return &View{df: filtered, numericCols: d.numericCols}, nil
}

// Nrow returns the number of rows in the view.
func (v *View) Nrow() int {
	return v.df.Nrow()
}

// Columns returns the column headers in source order.
func (v *View) Columns() []string {
	return v.df.Names()
}

// NumericColumns returns the numeric column headers in source order.
func (v *View) NumericColumns() []string {
	return append([]string(nil), v.numericCols...)
}

// Rows returns the data rows as strings, without the header row.
func (v *View) Rows() [][]string {
	records := v.df.Records()
	if len(records) <= 1 {
		return [][]string{}
	}
	return records[1:]
}

// YearSubset derives the sub-view of rows matching a single year.
func (v *View) YearSubset(year int) (*View, error) {
	if v.Nrow() == 0 {
		return v, nil
	}
	sub := v.df.Filter(dataframe.F{Colname: YearColumn, Comparator: series.Eq, Comparando: year})
	if sub.Err != nil {
		return nil, fmt.Errorf("subset year %d: %w", year, sub.Err)
	}
	return &View{df: sub, numericCols: v.numericCols}, nil
}

// RegionSubset derives the sub-view of rows matching a single region.
func (v *View) RegionSubset(region string) (*View, error) {
	if v.Nrow() == 0 {
		return v, nil
	}
	sub := v.df.Filter(dataframe.F{Colname: RegionColumn, Comparator: series.Eq, Comparando: region})
	if sub.Err != nil {
		return nil, fmt.Errorf("subset region %s: %w", region, sub.Err)
	}
	return &View{df: sub, numericCols: v.numericCols}, nil
}

// Years returns the year of every row, in row order.
func (v *View) Years() ([]int, error) {
	if v.Nrow() == 0 {
		return nil, nil
	}
	years, err := v.df.Col(YearColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("read %s column: %w", YearColumn, err)
	}
	return years, nil
}

// Regions returns the region label of every row, in row order.
func (v *View) Regions() []string {
	if v.Nrow() == 0 {
		return nil
	}
	return v.df.Col(RegionColumn).Records()
}

// Floats returns the values of a numeric column, in row order.
func (v *View) Floats(column string) []float64 {
	if v.Nrow() == 0 {
		return nil
	}
	return v.df.Col(column).Float()
}
