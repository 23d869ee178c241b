package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"taxidash.io/internal/dataset"
	"taxidash.io/internal/trips"
	"taxidash.io/internal/views"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// debugDataTypes are the values accepted by the dataType parameter.
var debugDataTypes = []string{"stats", "report", "companies", "summary", "mirror"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: debugDataTypes,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "stats":
		data = webUI.Dataset.Stats()
		title = "Dataset - Cache Statistics"
	case "report":
		data = webUI.snapshotData(func(s *dataset.Snapshot) interface{} { return s.Report })
		title = "Dataset - Load Report"
	case "companies":
		data = webUI.snapshotData(func(s *dataset.Snapshot) interface{} { return s.Table.Companies() })
		title = "Dataset - Companies"
	case "summary":
		data = webUI.snapshotData(func(s *dataset.Snapshot) interface{} {
			return views.Summary(s.Table.Filter(trips.DefaultSelection()))
		})
		title = "Dataset - Default Selection Summary"
	case "mirror":
		data = webUI.mirrorData(r)
		title = "SQLite Mirror - Row Counts"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stats, report, companies, summary, mirror.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
