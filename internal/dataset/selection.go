package dataset

import (
	"sort"
	"strconv"
	"strings"
)

// Selection is the pair of filter sets chosen in the sidebar. An empty slice
// means "nothing selected" and yields an empty view, not an error.
type Selection struct {
	Years   []int
	Regions []string
}

// DefaultSelection selects all years and all regions except the aggregate
// sentinel.
func (d *Dataset) DefaultSelection() Selection {
	return Selection{
		Years:   d.Years(),
		Regions: d.DefaultRegions(),
	}
}

// Normalize sorts and deduplicates both sets so equal selections compare
// equal and produce the same cache key.
func (s Selection) Normalize() Selection {
	return Selection{
		Years:   normalizeInts(s.Years),
		Regions: normalizeStrings(s.Regions),
	}
}

// Key is the canonical cache key of the selection. Callers must Normalize
// first.
func (s Selection) Key() string {
	var b strings.Builder
	b.WriteString("y:")
	for i, y := range s.Years {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(y))
	}
	b.WriteString("|r:")
	for i, r := range s.Regions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(r)
	}
	return b.String()
}

// HasYear reports whether year is in the selected year set.
func (s Selection) HasYear(year int) bool {
	for _, y := range s.Years {
		if y == year {
			return true
		}
	}
	return false
}

// HasRegion reports whether region is in the selected region set.
func (s Selection) HasRegion(region string) bool {
	for _, r := range s.Regions {
		if r == region {
			return true
		}
	}
	return false
}

func normalizeInts(values []int) []int {
	seen := make(map[int]bool, len(values))
	var out []int
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func normalizeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
