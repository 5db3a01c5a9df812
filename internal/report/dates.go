package report

import (
	"fmt"
	"strings"
	"time"
)

// displayLayout is the UK-style calendar form every date renders to.
const displayLayout = "02/01/2006"

// FormatDate normalizes whatever date encoding the store handed back into a
// DD/MM/YYYY display string. Values arrive as ISO-8601 timestamps (with or
// without a trailing "Z"), calendar-only strings, space-separated
// timestamps, or native time.Time values. It never fails: on an
// unparseable input it falls back to the substring before the first
// whitespace, verbatim.
func FormatDate(value any) string {
	if t, ok := value.(time.Time); ok {
		return t.Format(displayLayout)
	}
	if value == nil {
		return ""
	}

	s := fmt.Sprint(value)

	if strings.Contains(s, "T") {
		iso := strings.Replace(s, "Z", "+00:00", 1)
		for _, layout := range []string{"2006-01-02T15:04:05-07:00", "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, iso); err == nil {
				return t.Format(displayLayout)
			}
		}
		return fallback(s)
	}

	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayLayout)
		}
	}

	return fallback(s)
}

func fallback(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}

	return s
}
