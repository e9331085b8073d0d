// Package dto defines data transfer objects for API requests and responses.
// Field names follow the camelCase shape the web client stores and expects.
package dto

import "time"

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// ErrorResponse represents an error returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ParseDate parses a calendar date from its wire format.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// FormatDate renders a calendar date in its wire format.
func FormatDate(value time.Time) string {
	return value.Format(dateLayout)
}

// FormatDatePtr renders an optional calendar date, or nil.
func FormatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
