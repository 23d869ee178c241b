package restapi

import (
	"errors"
	"net/http"

	"taxidash.io/internal/dataset"
	"taxidash.io/internal/models"
	"taxidash.io/internal/trips"
	"taxidash.io/internal/utils"
)

// currentSnapshot returns the loaded trip table, loading it on demand if the
// startup load failed. It writes the error response itself.
func (api *RestAPI) currentSnapshot(w http.ResponseWriter, r *http.Request) (*dataset.Snapshot, bool) {
	snapshot, err := api.Dataset.Current()
	if errors.Is(err, dataset.ErrNotLoaded) {
		snapshot, err = api.Dataset.Load(r.Context())
	}
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return nil, false
	}
	return snapshot, true
}

// parseSelection reads the selection from the query string and checks the
// company against the loaded table.
func (api *RestAPI) parseSelection(w http.ResponseWriter, r *http.Request, snapshot *dataset.Snapshot) (trips.Selection, bool) {
	sel, fieldErrors := utils.ParseSelection(r.URL.Query())
	if len(fieldErrors) == 0 && sel.Company != "" && !snapshot.Table.HasCompany(sel.Company) {
		fieldErrors["company"] = append(fieldErrors["company"], "unknown company")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return sel, false
	}
	return sel, true
}

// selectionRequest resolves the snapshot and selection every view handler needs.
func (api *RestAPI) selectionRequest(w http.ResponseWriter, r *http.Request) (*dataset.Snapshot, trips.Selection, bool) {
	snapshot, ok := api.currentSnapshot(w, r)
	if !ok {
		return nil, trips.Selection{}, false
	}
	sel, ok := api.parseSelection(w, r, snapshot)
	if !ok {
		return nil, trips.Selection{}, false
	}
	return snapshot, sel, true
}

// memoized returns the cached view for key, building it from the selected
// rows on a miss.
func (api *RestAPI) memoized(snapshot *dataset.Snapshot, sel trips.Selection, key string, build func([]trips.Trip) any) (any, error) {
	return api.Dataset.View(snapshot, key, func() (any, error) {
		return build(snapshot.Table.Filter(sel)), nil
	})
}

func references(snapshot *dataset.Snapshot, sel trips.Selection) models.ReferencesModel {
	return models.NewReferences(sel, snapshot.Source)
}
