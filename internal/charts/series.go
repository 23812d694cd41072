// Package charts renders the dashboard's chart panels as PNGs. Series
// building is separated from drawing so the data ordering rules can be
// tested without rasterizing anything.
package charts

import (
	"sort"

	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/models"
)

// BarSeries holds one bar per region for a single year, in the row order of
// the filtered view.
type BarSeries struct {
	Regions []string
	Values  []float64
}

// Empty reports whether the single-year subset had no rows.
func (s BarSeries) Empty() bool {
	return len(s.Values) == 0
}

// BuildBarSeries derives the per-region values of one metric for a single
// year from the filtered view.
func BuildBarSeries(view *dataset.View, year int, metric models.Metric) (BarSeries, error) {
	sub, err := view.YearSubset(year)
	if err != nil {
		return BarSeries{}, err
	}
	if sub.Nrow() == 0 {
		return BarSeries{}, nil
	}
	return BarSeries{
		Regions: sub.Regions(),
		Values:  sub.Floats(metric.Column()),
	}, nil
}

// LineSeries holds one point per year for a single region, sorted
// year-ascending. Years doubles as the forced X tick set.
type LineSeries struct {
	Years  []int
	Values []float64
}

// Empty reports whether the single-region subset had no rows.
func (s LineSeries) Empty() bool {
	return len(s.Values) == 0
}

// BuildLineSeries derives the metric-by-year trend of a single region from
// the filtered view, in year-ascending order.
func BuildLineSeries(view *dataset.View, region string, metric models.Metric) (LineSeries, error) {
	sub, err := view.RegionSubset(region)
	if err != nil {
		return LineSeries{}, err
	}
	if sub.Nrow() == 0 {
		return LineSeries{}, nil
	}

	years, err := sub.Years()
	if err != nil {
		return LineSeries{}, err
	}
	values := sub.Floats(metric.Column())

	order := make([]int, len(years))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return years[order[a]] < years[order[b]] })

	s := LineSeries{
		Years:  make([]int, len(order)),
		Values: make([]float64, len(order)),
	}
	for i, idx := range order {
		s.Years[i] = years[idx]
		s.Values[i] = values[idx]
	}
	return s, nil
}
