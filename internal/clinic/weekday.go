package clinic

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spanishWeekdays localizes time.Weekday values for display and for
// matching against a specialty's day set.
var spanishWeekdays = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// ValidDayNames lists the accepted weekday names in display order.
var ValidDayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// validDays holds the normalized form of every accepted weekday name.
var validDays = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ValidDayNames))
	for _, d := range ValidDayNames {
		m[normalizeDay(d)] = struct{}{}
	}
	return m
}()

// WeekdayName returns the localized name of t's weekday. Unknown
// weekday values fall back to the raw English name.
func WeekdayName(t time.Time) string {
	if name, ok := spanishWeekdays[t.Weekday()]; ok {
		return name
	}
	return t.Weekday().String()
}

// stripAccents removes combining marks so that "Miércoles" and
// "Miercoles" normalize to the same key.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeDay folds a weekday name for comparison: trimmed,
// lower-cased, accents removed.
func normalizeDay(day string) string {
	s := strings.TrimSpace(day)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// isValidDay reports whether day names one of the seven accepted
// weekdays, under normalization.
func isValidDay(day string) bool {
	_, ok := validDays[normalizeDay(day)]
	return ok
}
