// Package extractor pulls a quantity, a cost, and a date out of raw OCR text.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smartcarbon/internal/domain"
)

// amountPatterns only covers categories whose documents state a physical
// quantity. Everything else relies on manual entry or the spend-based fallback.
var amountPatterns = map[domain.Category]*regexp.Regexp{
	domain.CategoryElectricity: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kwh)`),
	domain.CategoryNaturalGas:  regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kwh|therms?)`),
	domain.CategoryFuel:        regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:liters?|gallons?|l|gal)`),
	domain.CategoryWater:       regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:m³|cubic|gallons?)`),
	domain.CategoryTransport:   regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:km|miles?|mi)`),
}

var (
	costPattern     = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
	datePattern     = regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
	dateSeparatorRe = regexp.MustCompile(`[/\-]`)
)

// Extractor is safe for concurrent use.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the source of "today" used when no date is found.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New creates an Extractor that defaults missing dates to the wall clock.
func New(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails: a field that cannot be found is left nil, and the date
// falls back to today.
func (e *Extractor) Extract(text string, category domain.Category) domain.ExtractedFields {
	var fields domain.ExtractedFields

	if re, ok := amountPatterns[category]; ok {
		fields.Amount = firstNumber(re, text)
	}
	fields.Cost = firstNumber(costPattern, text)

	fields.Date = e.now().Format(domain.FormDateLayout)
	if m := datePattern.FindStringSubmatch(text); len(m) > 1 {
		if d, ok := normalizeDate(m[1]); ok {
			fields.Date = d
		}
	}

	// Spend-based accounting: dollars stand in for the quantity.
	if fields.Amount == nil && fields.Cost != nil && category == domain.CategoryOfficeSupplies {
		amount := *fields.Cost
		fields.Amount = &amount
	}

	return fields
}

func firstNumber(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// normalizeDate reads a month-first token and rewrites it as MM/DD/YYYY. A token
// that is not a valid month-first date is retried day-first.
func normalizeDate(token string) (string, bool) {
	parts := dateSeparatorRe.Split(token, -1)
	if len(parts) != 3 {
		return "", false
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	year, ok := expandYear(parts[2])
	if err1 != nil || err2 != nil || !ok {
		return "", false
	}
	if t, ok := validDate(year, first, second); ok {
		return t.Format(domain.FormDateLayout), true
	}
	if t, ok := validDate(year, second, first); ok {
		return t.Format(domain.FormDateLayout), true
	}
	return "", false
}

// expandYear accepts two- or four-digit years. Two-digit years pivot at 69 the
// same way strptime's %y does.
func expandYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 2 && len(s) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if len(s) == 2 {
		if y < 69 {
			return 2000 + y, true
		}
		return 1900 + y, true
	}
	return y, true
}

func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
