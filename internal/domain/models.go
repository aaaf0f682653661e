package domain

import "time"

// Field names of a status record as served by the API.
const (
	FieldID         = "id"
	FieldClientName = "client_name"
	FieldTimestamp  = "timestamp"
)

// RequiredFields must be present on every status record the API returns.
var RequiredFields = []string{FieldID, FieldClientName, FieldTimestamp}

type StatusRecord struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCreate struct {
	ClientName string `json:"client_name"`
}

// MissingFields lists the required fields absent from a decoded record.
// A present field with a null or zero value is not missing.
func MissingFields(obj map[string]any) []string {
	var missing []string
	for _, f := range RequiredFields {
		if _, ok := obj[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
