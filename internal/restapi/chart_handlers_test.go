package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econdash.hanlabs.org/internal/models"
)

func decodePlaceholder(t *testing.T, body []byte) models.Placeholder {
	t.Helper()
	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &model))

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	return models.Placeholder{
		Kind: data["placeholder"].(string),
		Text: data["text"].(string),
	}
}

func TestBarChartHandlerRendersPNG(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/bar/employed.png?year=2021")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	require.Greater(t, len(body), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestBarChartHandlerNoYearsSelected(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/bar/employed.png?years=&year=2021")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	placeholder := decodePlaceholder(t, body)
	assert.Equal(t, models.PlaceholderInfo, placeholder.Kind)
}

func TestBarChartHandlerEmptyYearSubset(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/bar/employed.png?year=1999")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	placeholder := decodePlaceholder(t, body)
	assert.Equal(t, models.PlaceholderWarning, placeholder.Kind)
	assert.Equal(t, "선택한 연도에 대한 데이터가 없습니다.", placeholder.Text)
}

func TestBarChartHandlerRejectsUnknownMetric(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/bar/bogus.png?year=2021")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "unknown metric")
}

func TestBarChartHandlerRequiresYear(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/bar/employed.png")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "year")
}

func TestLineChartHandlerRendersPNG(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/line/active.png?region=서울")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestLineChartHandlerNoRegionsSelected(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/line/active.png?regions=&region=서울")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	placeholder := decodePlaceholder(t, body)
	assert.Equal(t, models.PlaceholderInfo, placeholder.Kind)
}

func TestLineChartHandlerEmptyRegionSubset(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/line/active.png?region=제주")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	placeholder := decodePlaceholder(t, body)
	assert.Equal(t, models.PlaceholderWarning, placeholder.Kind)
	assert.Equal(t, "선택한 지역에 대한 데이터가 없습니다.", placeholder.Text)
}

func TestLineChartHandlerRequiresRegion(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/line/active.png")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "region")
}

func TestHeatmapHandlerRendersPNG(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/heatmap.png")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestHeatmapHandlerEmptySelectionPlaceholder(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, "/api/charts/heatmap.png?regions=")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	placeholder := decodePlaceholder(t, body)
	assert.Equal(t, models.PlaceholderInfo, placeholder.Kind)
}

func TestChartHandlersDatasetUnavailable(t *testing.T) {
	api := createUnavailableTestApi(t)

	for _, endpoint := range []string{
		"/api/charts/bar/employed.png?year=2021",
		"/api/charts/line/active.png?region=서울",
		"/api/charts/heatmap.png",
	} {
		resp, body := serveRawEndpoint(t, api, endpoint)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, endpoint)
		assert.Contains(t, string(body), "dataset unavailable", endpoint)
	}
}
