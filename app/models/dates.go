package models

import "time"

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
