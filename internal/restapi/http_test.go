package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"econdash.hanlabs.org/internal/app"
	"econdash.hanlabs.org/internal/appconf"
	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/logging"
	"econdash.hanlabs.org/internal/models"
)

// createTestApi creates a RestAPI instance backed by the testdata fixture.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager := dataset.NewManager(filepath.Join("../../testdata", "economic_activity.csv"), logger)

	application := &app.Application{
		Config: appconf.Config{
			Env: appconf.EnvFlagToEnvironment("test"),
		},
		Logger:      logger,
		DataManager: manager,
	}
	return NewRestAPI(application)
}

// createUnavailableTestApi creates a RestAPI whose source file is missing.
func createUnavailableTestApi(t *testing.T) *RestAPI {
	t.Helper()
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager := dataset.NewManager(filepath.Join("../../testdata", "no_such_file.csv"), logger)

	application := &app.Application{
		Config:      appconf.Config{Env: appconf.EnvFlagToEnvironment("test")},
		Logger:      logger,
		DataManager: manager,
	}
	return NewRestAPI(application)
}

// serveRawEndpoint sets up a test server, makes a request to the endpoint
// and returns the raw response with its body.
func serveRawEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// serveAndRetrieveEndpoint makes a request to the endpoint and decodes the
// JSON envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	resp, body := serveRawEndpoint(t, api, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))
	return api, resp, response
}
