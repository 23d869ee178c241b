package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"taxidash.io/internal/app"
	"taxidash.io/internal/appconf"
	"taxidash.io/internal/dataset"
	"taxidash.io/internal/logging"
	"taxidash.io/internal/models"
)

func testLogger() *slog.Logger {
	return logging.NewStructuredLogger(io.Discard, slog.LevelError)
}

// createTestApiWithSource creates a RestAPI over a dataset manager reading
// source. Nothing is loaded until the first request.
func createTestApiWithSource(t *testing.T, source string) *RestAPI {
	t.Helper()

	manager := dataset.NewManager(dataset.Config{Source: source}, testLogger())

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: -1,
			DataURL:   source,
		},
		Logger:  testLogger(),
		Dataset: manager,
	}

	api := NewRestAPI(application)
	t.Cleanup(func() {
		api.Stop()
		application.Shutdown()
	})
	return api
}

// createTestApi creates a RestAPI with the trip fixture already loaded.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	api := createTestApiWithSource(t, models.GetFixturePath(t, "trips.csv"))
	_, err := api.Dataset.Load(context.Background())
	require.NoError(t, err)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	return requestApiEndpoint(t, api, http.MethodGet, endpoint)
}

func requestApiEndpoint(t *testing.T, api *RestAPI, method, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.WithMiddleware(api.NewRouter()))
	defer server.Close()

	req, err := http.NewRequest(method, server.URL+endpoint, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveFieldErrors requests an endpoint expected to fail
// validation and returns its field errors.
func serveAndRetrieveFieldErrors(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string][]string) {
	t.Helper()

	server := httptest.NewServer(api.WithMiddleware(api.NewRouter()))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		Code        int                 `json:"code"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.FieldErrors
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "data.list should be an array")
	return list
}

func referencesOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok, "data.references should be an object")
	return refs
}
