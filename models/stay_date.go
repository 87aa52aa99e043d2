package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

var stayDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStayDate accepts date or datetime-local form values, interpreted in loc.
func ParseStayDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range stayDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// StayDate is a check-in or check-out stored on a room record. It is written
// as "" while the room is free and as RFC 3339 otherwise. Zone-less
// datetime-local values are read in the server's local zone.
type StayDate struct {
	time.Time
}

func NewStayDate(t time.Time) StayDate {
	return StayDate{Time: t}
}

func (d StayDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

func (d *StayDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = StayDate{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("stay date must be a string: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		*d = StayDate{}
		return nil
	}
	t, err := ParseStayDate(raw, time.Local)
	if err != nil {
		return err
	}
	*d = StayDate{Time: t}
	return nil
}
