package restapi

import (
	"net/http"
	"strings"

	"taxidash.io/internal/aggregate"
	"taxidash.io/internal/dataset"
	"taxidash.io/internal/models"
	"taxidash.io/internal/trips"
	"taxidash.io/internal/views"
)

func (api *RestAPI) paymentTypesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	chart, err := api.memoized(snapshot, sel, dataset.ViewKey("payment-types", sel), func(rows []trips.Trip) any {
		return views.PaymentTypes(rows)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(chart, references(snapshot, sel)))
}

func (api *RestAPI) weekdaysHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	chart, err := api.memoized(snapshot, sel, dataset.ViewKey("weekdays", sel), func(rows []trips.Trip) any {
		return views.Weekdays(rows)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(chart, references(snapshot, sel)))
}

func (api *RestAPI) topCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("metric")
	if name == "" {
		name = "trips"
	}
	metric, found := views.LookupCompanyMetric(name)
	if !found {
		api.validationErrorResponse(w, r, map[string][]string{
			"metric": {"metric must be one of: " + strings.Join(views.CompanyMetricNames(), ", ")},
		})
		return
	}

	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	chart, err := api.memoized(snapshot, sel, dataset.ViewKey("top-companies", sel, metric.Name), func(rows []trips.Trip) any {
		return views.TopCompanies(rows, metric, aggregate.DefaultTopN)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(chart, references(snapshot, sel).WithMetric(metric.Name)))
}
