package webui

import (
	"net/http"

	"taxidash.io/internal/dataset"
)

// snapshotData applies fn to the current table, or reports why there is none.
func (webUI *WebUI) snapshotData(fn func(*dataset.Snapshot) interface{}) interface{} {
	snapshot, err := webUI.Dataset.Current()
	if err != nil {
		return map[string]string{"error": err.Error()}
	}
	return fn(snapshot)
}

func (webUI *WebUI) mirrorData(r *http.Request) interface{} {
	if webUI.TripDB == nil {
		return map[string]string{"error": "the SQLite mirror is disabled"}
	}

	counts, err := webUI.TripDB.TableCounts(r.Context())
	if err != nil {
		return map[string]string{"error": err.Error()}
	}

	data := map[string]interface{}{"tables": counts}
	if snapshot, err := webUI.Dataset.Current(); err == nil {
		companies, err := webUI.TripDB.CompanyCounts(r.Context(), snapshot.Source)
		if err != nil {
			return map[string]string{"error": err.Error()}
		}
		data["companies"] = companies
	}
	return data
}
