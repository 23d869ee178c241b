package restapi

import (
	"net/http"

	"taxidash.io/internal/models"
)

func (api *RestAPI) companiesHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := api.currentSnapshot(w, r)
	if !ok {
		return
	}

	refs := models.NewEmptyReferences()
	refs.Source = snapshot.Source

	api.sendResponse(w, r, models.NewEntryResponse(models.NewCompanyList(snapshot.Table.Companies()), refs))
}
