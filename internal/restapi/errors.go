package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"taxidash.io/internal/dataset"
	"taxidash.io/internal/logging"
	"taxidash.io/internal/models"
	"taxidash.io/internal/trips"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, code int, text string) {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     models.ResponseVersion,
	}

	setJSONResponseType(&w)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err,
			slog.Int("code", code),
			slog.String("path", r.URL.Path))
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "internal server error", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())))
	api.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

// unavailableResponse sends a 503 when the trip data could not be loaded.
func (api *RestAPI) unavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "trip data unavailable", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", logging.RequestIDFromContext(r.Context())))
	api.sendError(w, r, http.StatusServiceUnavailable, "trip data unavailable")
}

// dataErrorResponse maps a dataset error onto a status code. Any failure to
// load the trip table is reported as 503.
func (api *RestAPI) dataErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dataset.ErrNotLoaded) ||
		errors.Is(err, dataset.ErrSourceUnavailable) ||
		errors.Is(err, dataset.ErrLoadFailed) ||
		errors.Is(err, trips.ErrMissingColumn) {
		api.unavailableResponse(w, r, err)
		return
	}
	api.serverErrorResponse(w, r, err)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Code        int                 `json:"code"`
		CurrentTime int64               `json:"currentTime"`
		Text        string              `json:"text"`
		Version     int                 `json:"version"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "invalid request",
		Version:     models.ResponseVersion,
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err)
	}
}
