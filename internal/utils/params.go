package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractMetricFromParams retrieves the metric path parameter and removes
// file extensions like ".png".
func ExtractMetricFromParams(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName("metric")
	return strings.Split(raw, ".png")[0]
}

// IntListParam parses a comma-separated integer list query parameter.
// present is false when the parameter was absent, so callers can distinguish
// "use the default selection" from an explicitly empty selection.
func IntListParam(query url.Values, key string) (values []int, present bool, err error) {
	if !query.Has(key) {
		return nil, false, nil
	}
	raw := query.Get(key)
	if raw == "" {
		return []int{}, true, nil
	}
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, true, fmt.Errorf("invalid integer %q in %s", part, key)
		}
		values = append(values, v)
	}
	return values, true, nil
}

// StringListParam parses a comma-separated string list query parameter.
func StringListParam(query url.Values, key string) (values []string, present bool) {
	if !query.Has(key) {
		return nil, false
	}
	raw := query.Get(key)
	if raw == "" {
		return []string{}, true
	}
	for _, part := range strings.Split(raw, ",") {
		values = append(values, strings.TrimSpace(part))
	}
	return values, true
}

// IntParam parses a single required integer query parameter.
func IntParam(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %s", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q for %s", raw, key)
	}
	return v, nil
}
