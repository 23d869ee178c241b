package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshHandler(t *testing.T) {
	api := createTestApi(t)
	before, err := api.Dataset.Current()
	require.NoError(t, err)

	resp, model := requestApiEndpoint(t, api, http.MethodPost, "/api/refresh.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, float64(7), entry["rows"])
	assert.Equal(t, float64(1), entry["skipped"])
	assert.Equal(t, float64(4), entry["companies"])
	assert.Equal(t, fixtureSource(t), entry["source"])

	after, err := api.Dataset.Current()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
}

func TestRefreshHandlerRejectsGet(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/refresh.json?key=TEST")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, model.Code)
}

func TestRefreshHandlerSourceUnavailable(t *testing.T) {
	api := createTestApiWithSource(t, "../../testdata/does-not-exist.csv")

	resp, model := requestApiEndpoint(t, api, http.MethodPost, "/api/refresh.json?key=TEST")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "trip data unavailable", model.Text)
}
