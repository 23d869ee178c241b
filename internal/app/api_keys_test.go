package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxidash.io/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"alpha", "beta"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("beta"))
	assert.True(t, app.IsInvalidAPIKey("gamma"))

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/summary.json?key=alpha", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/summary.json", nil)))
}

func TestShutdownWithoutDependencies(t *testing.T) {
	app := &Application{}
	assert.NotPanics(t, app.Shutdown)
}
