package models

import "fmt"

// Metric is one of the labor-force measures the dashboard can chart. Each
// metric is bound at compile time to the CSV column holding it, so unknown
// column labels are rejected at the HTTP boundary instead of failing deep
// inside a plotting call.
type Metric int

const (
	MetricActivePopulation Metric = iota
	MetricEmployed
	MetricUnemployed
)

// Metrics returns the chartable metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricActivePopulation, MetricEmployed, MetricUnemployed}
}

// ParseMetric resolves a metric slug from a request path or query parameter.
func ParseMetric(slug string) (Metric, error) {
	switch slug {
	case "active":
		return MetricActivePopulation, nil
	case "employed":
		return MetricEmployed, nil
	case "unemployed":
		return MetricUnemployed, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (expected active, employed or unemployed)", slug)
	}
}

// Slug is the stable identifier used in URLs.
func (m Metric) Slug() string {
	switch m {
	case MetricEmployed:
		return "employed"
	case MetricUnemployed:
		return "unemployed"
	default:
		return "active"
	}
}

// Column is the header of the CSV column holding this metric. All counts are
// in thousands of persons.
func (m Metric) Column() string {
	switch m {
	case MetricEmployed:
		return "취업자 (천명)"
	case MetricUnemployed:
		return "실업자 (천명)"
	default:
		return "경제활동인구 (천명)"
	}
}

// Label is the human-readable name shown in the UI. It matches the source
// column header.
func (m Metric) Label() string {
	return m.Column()
}
