package gallery

import "testing"

func TestFormatYearMonth(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"exif colon format", "2024:06:15 12:30:00", "June 2024"},
		{"dash format", "2024-06-15", "June 2024"},
		{"year and month only", "2024-01", "January 2024"},
		{"december", "2023:12:31 23:59:59", "December 2023"},
		{"month out of range", "2024-13-01", "2024-13-01"},
		{"month zero", "2024-00-01", "2024-00-01"},
		{"not a number", "2024-junk-01", "2024-junk-01"},
		{"no separator", "2024", "2024"},
		{"empty month component", "2024--01", "2024--01"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatYearMonth(tt.raw); got != tt.want {
				t.Errorf("FormatYearMonth(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"empty", nil, ""},
		{"single date", []string{"2024:06:15 12:00:00"}, "June 2024"},
		{"same month collapses", []string{"2024:06:01 08:00:00", "2024:06:20 19:00:00"}, "June 2024"},
		{
			"range across months",
			[]string{"2024:09:10 10:00:00", "2024:06:15 12:00:00"},
			"June 2024 – September 2024",
		},
		{
			"range across years",
			[]string{"2023:12:31 23:00:00", "2024:01:01 01:00:00"},
			"December 2023 – January 2024",
		},
		{
			"unformattable dates pass through",
			[]string{"later", "earlier"},
			"earlier – later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateRange(tt.dates); got != tt.want {
				t.Errorf("FormatDateRange(%v) = %q, want %q", tt.dates, got, tt.want)
			}
		})
	}
}

func TestFormatDateRangeDoesNotMutateInput(t *testing.T) {
	dates := []string{"2024:09:10 10:00:00", "2024:06:15 12:00:00"}
	FormatDateRange(dates)
	if dates[0] != "2024:09:10 10:00:00" {
		t.Errorf("input slice was reordered: %v", dates)
	}
}
