// Package model defines the JSON document models for the persistence layer.
// Documents use camelCase keys and date-only strings for calendar dates, the
// same shape the web client writes.
package model

import "time"

const dateLayout = "2006-01-02"

// formatDate renders a calendar date as yyyy-mm-dd.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// parseDate accepts yyyy-mm-dd and full RFC 3339 timestamps. Unparseable
// values come back as the zero time rather than an error; a single bad date
// must not make the whole document unreadable.
func parseDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseDate(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}
