package schedule

import "time"

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string in the host local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// DateOnly truncates t to its calendar date, keeping the location.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
