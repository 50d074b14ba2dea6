package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO 8601 calendar date used on the wire.
	DateLayout = "2006-01-02"
	// FormDateLayout is the MM/DD/YYYY form produced by extraction.
	FormDateLayout = "01/02/2006"
)

// CalendarDate is a day without a time component, stored as UTC midnight.
type CalendarDate struct {
	time.Time
}

// NewCalendarDate truncates t to its calendar day.
func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate accepts YYYY-MM-DD or MM/DD/YYYY.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, FormDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDate{Time: t}, nil
		}
	}
	return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM period the date belongs to.
func (d CalendarDate) MonthKey() string {
	return d.Format("2006-01")
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
