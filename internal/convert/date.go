package convert

import (
	"fmt"
	"time"
)

// DateLayout is the human-readable form produced by ConvertDate,
// e.g. "Tuesday 06 July 2021".
const DateLayout = "Monday 02 January 2006"

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
	"20060102",
}

// FormatError reports an input that is not a valid ISO-8601 date.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid ISO date %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ConvertDate parses an ISO-8601 date and formats it with DateLayout.
func ConvertDate(iso string) (string, error) {
	var firstErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, iso)
		if err == nil {
			return t.Format(DateLayout), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", &FormatError{Input: iso, Err: firstErr}
}
