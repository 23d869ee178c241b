package models

import "time"

// CurrentTimeModel is the clock reading served by current-time.json.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

type CurrentTimeData struct {
	Entry      CurrentTimeModel `json:"entry"`
	References ReferencesModel  `json:"references"`
}

// NewCurrentTimeData wraps now as an entry with empty references. Time is in
// epoch milliseconds like every other timestamp in the envelope.
func NewCurrentTimeData(now time.Time) CurrentTimeData {
	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: now.Format(time.RFC3339),
			Time:         now.UnixMilli(),
		},
		References: NewEmptyReferences(),
	}
}
