package views

import (
	"encoding/json"

	"taxidash.io/internal/palette"
)

// HeatmapCell is one row of the heatmap layer: a pickup location weighted by
// its trip count.
type HeatmapCell struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Size      int     `json:"size"`
}

// PointCell is one row of a colored point map. The value is emitted under
// the metric's name.
type PointCell struct {
	Latitude  float64
	Longitude float64
	Metric    string
	Value     float64
	Color     palette.Color
	// Category is the modal category the color was taken from. It stays
	// server-side; only the color reaches the wire.
	Category string
}

func (c PointCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
		c.Metric:    c.Value,
		"color":     c.Color.RGB(),
	})
}

// ColumnCell is one row of an extruded column map.
type ColumnCell struct {
	Latitude  float64
	Longitude float64
	Metric    string
	Value     float64
}

func (c ColumnCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
		c.Metric:    c.Value,
	})
}

// ColumnMap is a column layer plus the factor the renderer multiplies each
// value by to get a column height.
type ColumnMap struct {
	Metric         string       `json:"metric"`
	ElevationScale float64      `json:"elevationScale"`
	Cells          []ColumnCell `json:"cells"`
}

// BarEntry is one bar of a categorical bar chart.
type BarEntry struct {
	Dimension string
	Category  string
	Size      float64
	Color     palette.Color
}

func (b BarEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		b.Dimension: b.Category,
		"size":      b.Size,
		"color":     b.Color.Hex(),
	})
}

// BarChart is a categorical bar chart over one dimension.
type BarChart struct {
	Dimension string     `json:"dimension"`
	Bars      []BarEntry `json:"bars"`
}

// SummaryView is the headline metrics panel.
type SummaryView struct {
	Trips          int      `json:"trips"`
	TotalAmount    float64  `json:"totalAmount"`
	AverageFare    *float64 `json:"averageFare"`
	AverageTip     *float64 `json:"averageTip"`
	AverageMiles   *float64 `json:"averageMiles"`
	AverageSeconds *float64 `json:"averageSeconds"`
	Display        struct {
		Trips          string `json:"trips"`
		TotalAmount    string `json:"totalAmount"`
		AverageFare    string `json:"averageFare"`
		AverageTip     string `json:"averageTip"`
		AverageMiles   string `json:"averageMiles"`
		AverageSeconds string `json:"averageDuration"`
	} `json:"display"`
}
