package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/models"
)

func filteredSample(t *testing.T) *dataset.View {
	t.Helper()
	ds, err := dataset.FromRecords([][]string{
		{"년도", "지역", "경제활동인구 (천명)", "취업자 (천명)", "실업자 (천명)"},
		{"2020", "A", "100", "90", "10"},
		{"2020", "B", "200", "180", "20"},
		{"2021", "A", "110", "95", "15"},
	})
	require.NoError(t, err)

	view, err := ds.Filter(dataset.Selection{Years: []int{2020, 2021}, Regions: []string{"A", "B"}})
	require.NoError(t, err)
	return view
}

func TestBuildBarSeries(t *testing.T) {
	view := filteredSample(t)

	s, err := BuildBarSeries(view, 2020, models.MetricEmployed)
	require.NoError(t, err)

	require.False(t, s.Empty())
	assert.Equal(t, []string{"A", "B"}, s.Regions)
	assert.Equal(t, []float64{90, 180}, s.Values)
}

func TestBuildBarSeriesEmptyYear(t *testing.T) {
	view := filteredSample(t)

	s, err := BuildBarSeries(view, 1999, models.MetricEmployed)
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestBuildLineSeriesYearAscending(t *testing.T) {
	// Rows deliberately out of year order.
	ds, err := dataset.FromRecords([][]string{
		{"년도", "지역", "경제활동인구 (천명)", "취업자 (천명)", "실업자 (천명)"},
		{"2021", "A", "110", "95", "15"},
		{"2020", "A", "100", "90", "10"},
		{"2020", "B", "200", "180", "20"},
	})
	require.NoError(t, err)
	view, err := ds.Filter(dataset.Selection{Years: []int{2020, 2021}, Regions: []string{"A", "B"}})
	require.NoError(t, err)

	s, err := BuildLineSeries(view, "A", models.MetricEmployed)
	require.NoError(t, err)

	require.False(t, s.Empty())
	assert.Equal(t, []int{2020, 2021}, s.Years)
	assert.Equal(t, []float64{90, 95}, s.Values)
}

func TestBuildLineSeriesEmptyRegion(t *testing.T) {
	view := filteredSample(t)

	s, err := BuildLineSeries(view, "Z", models.MetricActivePopulation)
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderBarProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	s := BarSeries{Regions: []string{"A", "B"}, Values: []float64{90, 180}}

	err := RenderBar(&buf, s, "2020년 지역별 취업자 (천명)", "취업자 (천명)")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, buf.Bytes()[:4])
}

func TestRenderLineProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	s := LineSeries{Years: []int{2020, 2021}, Values: []float64{90, 95}}

	err := RenderLine(&buf, s, "A의 연도별 취업자 (천명) 변화 추이", "취업자 (천명)")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, buf.Bytes()[:4])
}

func TestRenderHeatmapProducesPNG(t *testing.T) {
	view := filteredSample(t)
	corr, ok := view.Correlation()
	require.True(t, ok)

	var buf bytes.Buffer
	err := RenderHeatmap(&buf, corr, "주요 지표 간 상관관계")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, buf.Bytes()[:4])
}
