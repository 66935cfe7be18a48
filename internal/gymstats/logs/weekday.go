package logs

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	LocaleES = "es"
	LocaleEN = "en"
)

// long weekday names, indexed by time.Weekday
var weekdayNames = map[string][7]string{
	LocaleES: {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	LocaleEN: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

var dateKeyRegex = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

func SupportedLocale(locale string) bool {
	_, ok := weekdayNames[locale]
	return ok
}

// NormalizeDate pads a Y-M-D date key to YYYY-MM-DD and returns it with the UTC
// midnight it denotes.
func NormalizeDate(dateKey string) (string, time.Time, error) {
	m := dateKeyRegex.FindStringSubmatch(dateKey)
	if m == nil {
		return "", time.Time{}, fmt.Errorf("date key %q is not Y-M-D", dateKey)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", time.Time{}, fmt.Errorf("date key %q is not a calendar date", dateKey)
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), t, nil
}

// WeekdayName returns the long weekday name of t in locale, falling back to Spanish.
func WeekdayName(t time.Time, locale string) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[LocaleES]
	}
	return names[t.UTC().Weekday()]
}
