package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire layout for goal end dates.
const DateLayout = "2006-01-02"

// Date is a goal deadline. The zero value means "no end date".
type Date struct {
	time.Time
}

// NewDate returns the given calendar day at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{t.UTC()}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// String returns YYYY-MM-DD, or RFC3339 when a time of day is present.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	u := d.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
		return u.Format(DateLayout)
	}
	return u.Format(time.RFC3339)
}

// Compare orders two dates by instant. Zero dates compare equal to each other.
func (d Date) Compare(o Date) int {
	return d.Time.Compare(o.Time)
}

// MarshalJSON encodes null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "" or a date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("endDate: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the same text as JSON.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}
