// resume/dates.go

package resume

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

////////////////////////////////////////////////////////////////////////

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthYearRe = regexp.MustCompile(`^(\w+)\s+(\d{4})$`)
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

	// monthNumbers maps lowercase English month names to their two-digit numbers.
	monthNumbers = map[string]string{
		"january": "01", "february": "02", "march": "03", "april": "04",
		"may": "05", "june": "06", "july": "07", "august": "08",
		"september": "09", "october": "10", "november": "11", "december": "12",
	}
)

////////////////////////////////////////////////////////////////////////

// CanonicalDate converts a date string of unknown origin into canonical
// YYYY-MM-DD form. Rules are checked in order, first match wins:
//
//   - nil, "" or the literal string "null" map to nil
//   - already-canonical YYYY-MM-DD is returned unchanged
//   - "<MonthName> <YYYY>" (e.g. "June 2024") becomes YYYY-MM-01;
//     an unrecognized month name maps to nil
//   - YYYY-MM becomes YYYY-MM-01
//   - anything else maps to nil with a logged warning
//
// Unparsable input is dropped, never an error: a resume with a strange date
// string still imports, just without that date.
func CanonicalDate(dateString *string) *string {
	if dateString == nil {
		return nil
	}
	s := strings.TrimSpace(*dateString)
	if s == "" || s == "null" {
		return nil
	}

	if isoDateRe.MatchString(s) {
		return &s
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		month, ok := monthNumbers[strings.ToLower(m[1])]
		if !ok {
			return nil
		}
		canonical := fmt.Sprintf("%s-%s-01", m[2], month)
		return &canonical
	}

	if yearMonthRe.MatchString(s) {
		canonical := s + "-01"
		return &canonical
	}

	log.Printf("could not parse date: %q", s)
	return nil
}
