package main

import (
	"net/http"

	"taxidash.io/internal/restapi"
	"taxidash.io/internal/webui"
)

// newHandler mounts the API and debug routes behind the shared middleware.
func newHandler(api *restapi.RestAPI, webUI *webui.WebUI) http.Handler {
	router := api.NewRouter()
	webUI.SetWebUIRoutes(router)
	return api.WithMiddleware(router)
}
