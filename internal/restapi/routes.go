package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// protected applies rate limiting and API key validation to a handler.
func (api *RestAPI) protected(h handlerFunc) http.Handler {
	handler := validateAPIKey(api, h)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	return handler
}

// SetRoutes registers every API endpoint on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/companies.json", api.protected(api.companiesHandler))
	router.Handler(http.MethodGet, "/api/summary.json", api.protected(api.summaryHandler))
	router.Handler(http.MethodGet, "/api/payment-types.json", api.protected(api.paymentTypesHandler))
	router.Handler(http.MethodGet, "/api/weekdays.json", api.protected(api.weekdaysHandler))
	router.Handler(http.MethodGet, "/api/top-companies.json", api.protected(api.topCompaniesHandler))
	router.Handler(http.MethodGet, "/api/maps/heatmap.json", api.protected(api.heatmapHandler))
	router.Handler(http.MethodGet, "/api/maps/points.json", api.protected(api.pointsHandler))
	router.Handler(http.MethodGet, "/api/maps/columns.json", api.protected(api.columnsHandler))
	router.Handler(http.MethodGet, "/api/current-time.json", api.protected(api.currentTimeHandler))
	router.Handler(http.MethodPost, "/api/refresh.json", api.protected(api.refreshHandler))
}

// NewRouter returns a router with every API endpoint and JSON 404/405
// responses.
func (api *RestAPI) NewRouter() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
	api.SetRoutes(router)
	return router
}

// WithMiddleware wraps handler in the server's middleware chain: request
// logging outermost, then security headers, then compression.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
