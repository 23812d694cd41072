package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the timestamp used in response envelopes,
// in milliseconds since the epoch.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse wraps a payload in the standard success envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// Placeholder kinds for chart panels that have nothing to draw. "info" means
// the user has not selected anything to plot yet (or the filtered set is
// empty); "warning" means the specific subset asked for has no data or the
// computation cannot be performed.
const (
	PlaceholderInfo    = "info"
	PlaceholderWarning = "warning"
)

// Placeholder is returned by chart endpoints instead of a PNG when there is
// nothing to draw. The dashboard shows it as a soft message, not an error.
type Placeholder struct {
	Kind string `json:"placeholder"`
	Text string `json:"text"`
}
