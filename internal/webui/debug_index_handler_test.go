package webui

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxidash.io/internal/app"
	"taxidash.io/internal/appconf"
	"taxidash.io/internal/dataset"
	"taxidash.io/internal/models"
	"taxidash.io/internal/tripdb"
)

func createTestWebUI(t *testing.T, withMirror bool) *WebUI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := &app.Application{
		Config: appconf.Config{Env: appconf.Test},
		Logger: logger,
	}

	config := dataset.Config{Source: models.GetFixturePath(t, "trips.csv")}
	if withMirror {
		client, err := tripdb.NewClient(tripdb.NewConfig(tripdb.MemoryPath, appconf.Test), logger)
		require.NoError(t, err)
		application.TripDB = client
		config.Mirror = client
	}
	application.Dataset = dataset.NewManager(config, logger)
	t.Cleanup(application.Shutdown)

	return &WebUI{Application: application}
}

func getDebugPage(t *testing.T, webUI *WebUI, query string) *httptest.ResponseRecorder {
	t.Helper()

	router := httprouter.New()
	webUI.SetWebUIRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/"+query, nil))
	return rec
}

func TestDebugIndexHandlerChooseDataType(t *testing.T) {
	rec := getDebugPage(t, createTestWebUI(t, false), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Choose a data type</title>")
	assert.Contains(t, body, `href="/debug/?dataType=stats"`)
}

func TestDebugIndexHandlerBeforeLoad(t *testing.T) {
	rec := getDebugPage(t, createTestWebUI(t, false), "?dataType=companies")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trip data not loaded")
}

func TestDebugIndexHandlerDataTypes(t *testing.T) {
	webUI := createTestWebUI(t, true)
	_, err := webUI.Dataset.Load(context.Background())
	require.NoError(t, err)

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"stats", "Dataset - Cache Statistics", "Rows: (int) 7"},
		{"report", "Dataset - Load Report", "Skipped: (int) 1"},
		{"companies", "Dataset - Companies", "Flash Cab"},
		{"summary", "Dataset - Default Selection Summary", "Trips: (int) 6"},
		{"mirror", "SQLite Mirror - Row Counts", "Sun Taxi"},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			rec := getDebugPage(t, webUI, "?dataType="+tt.dataType)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestDebugIndexHandlerMirrorDisabled(t *testing.T) {
	rec := getDebugPage(t, createTestWebUI(t, false), "?dataType=mirror")
	assert.Contains(t, rec.Body.String(), "the SQLite mirror is disabled")
}
