package services

import (
	"fmt"
	"strings"
	"time"
)

var bookingDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseBookingDate converts date/time text into a UTC timestamp.
// Text without a zone is read as UTC.
func ParseBookingDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", text)
}
