package gallery

import (
	"sort"
	"strconv"
	"strings"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dateSeparators = strings.NewReplacer(":", "-", " ", "-")

// FormatYearMonth reduces a raw EXIF-style timestamp ("2024:06:15 12:00:00"
// or "2024-06-15 12:00:00") to a "June 2024" caption. Inputs that do not
// split into at least a year and a 1-12 month number are returned unchanged
// rather than treated as errors.
func FormatYearMonth(raw string) string {
	parts := strings.Split(dateSeparators.Replace(raw), "-")
	if len(parts) < 2 {
		return raw
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return raw
	}

	return monthNames[month-1] + " " + parts[0]
}

// FormatDateRange reduces a set of raw capture timestamps to a month/year
// caption or range, e.g. "June 2024" or "June 2024 – September 2024".
// Empty input yields an empty string.
//
// Earliest and latest are picked by lexicographic order, which is
// order-preserving for both supported timestamp formats.
func FormatDateRange(dates []string) string {
	if len(dates) == 0 {
		return ""
	}

	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Strings(sorted)

	first := FormatYearMonth(sorted[0])
	last := FormatYearMonth(sorted[len(sorted)-1])

	if first == last {
		return first
	}
	return first + " – " + last
}
