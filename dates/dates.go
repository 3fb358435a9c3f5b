// Package dates normalizes caller-supplied date strings into the canonical
// YYYY-MM-DD form the upstream API expects. Formats are declared with the
// day/month/year tokens hosts already use (DD, MM, YYYY), not Go reference
// layouts.
package dates

import (
	"strings"
	"time"

	"github.com/kbukum/travelgate/errors"
)

const (
	// DefaultFormat is assumed when the caller does not declare one.
	DefaultFormat = "DD/MM/YYYY"
	// Canonical is the wire format of every date sent to the provider.
	Canonical = "YYYY-MM-DD"

	canonicalLayout = "2006-01-02"
)

var tokenReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
)

// Layout converts a token format such as "DD/MM/YYYY" into a Go time layout.
func Layout(format string) string {
	return tokenReplacer.Replace(format)
}

// Normalize parses value under the token format and re-emits it in canonical
// YYYY-MM-DD form. An empty format falls back to DefaultFormat. Fails with a
// DATE_FORMAT error when the value does not match.
func Normalize(value, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	t, err := time.Parse(Layout(format), value)
	if err != nil {
		return "", errors.DateFormat(value, format, err)
	}
	return t.Format(canonicalLayout), nil
}

// ParseCanonical parses a canonical YYYY-MM-DD string. Used for sorting
// provider records by travel date; unparsable values map to the zero time so
// they sort first instead of failing the whole list.
func ParseCanonical(value string) time.Time {
	t, err := time.Parse(canonicalLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
