package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"econdash.hanlabs.org/internal/logging"
)

func TestServerErrorResponseUsesRequestScopedLogger(t *testing.T) {
	api := createTestApi(t)

	var buf bytes.Buffer
	requestLogger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/data.json", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), requestLogger))
	rec := httptest.NewRecorder()

	api.serverErrorResponse(rec, req, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The error must land on the logger the middleware put in the context,
	// not on the application logger.
	output := buf.String()
	assert.Contains(t, output, `"msg":"internal server error"`)
	assert.Contains(t, output, `"path":"/api/dashboard/data.json"`)
}
