package restapi

import (
	"net/http"
	"strconv"
	"strings"

	"taxidash.io/internal/dataset"
	"taxidash.io/internal/models"
	"taxidash.io/internal/trips"
	"taxidash.io/internal/utils"
	"taxidash.io/internal/views"
)

const defaultMapMetric = "fare"

// mapMetric reads the metric parameter of the map endpoints.
func (api *RestAPI) mapMetric(w http.ResponseWriter, r *http.Request) (views.Metric, bool) {
	name := r.URL.Query().Get("metric")
	if name == "" {
		name = defaultMapMetric
	}
	metric, found := views.LookupMapMetric(name)
	if !found {
		api.validationErrorResponse(w, r, map[string][]string{
			"metric": {"metric must be one of: " + strings.Join(views.MapMetricNames(), ", ")},
		})
		return views.Metric{}, false
	}
	return metric, true
}

func (api *RestAPI) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	precision, fieldErrors := utils.ParseIntParam(r.URL.Query(), "precision", 0, nil)
	if len(fieldErrors) == 0 {
		if err := utils.ValidatePrecision(precision, views.MaxGeohashPrecision); err != nil {
			fieldErrors["precision"] = append(fieldErrors["precision"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	key := dataset.ViewKey("heatmap", sel, strconv.Itoa(precision))
	cells, err := api.memoized(snapshot, sel, key, func(rows []trips.Trip) any {
		return views.Heatmap(rows, uint(precision))
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(cells, references(snapshot, sel)))
}

func (api *RestAPI) pointsHandler(w http.ResponseWriter, r *http.Request) {
	metric, ok := api.mapMetric(w, r)
	if !ok {
		return
	}

	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	cells, err := api.memoized(snapshot, sel, dataset.ViewKey("points", sel, metric.Name), func(rows []trips.Trip) any {
		return views.PointMap(rows, metric)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(cells, references(snapshot, sel).WithMetric(metric.Name)))
}

func (api *RestAPI) columnsHandler(w http.ResponseWriter, r *http.Request) {
	metric, ok := api.mapMetric(w, r)
	if !ok {
		return
	}

	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	columns, err := api.memoized(snapshot, sel, dataset.ViewKey("columns", sel, metric.Name), func(rows []trips.Trip) any {
		return views.ColumnMapOf(rows, metric)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(columns, references(snapshot, sel).WithMetric(metric.Name)))
}
