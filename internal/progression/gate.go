package progression

import "time"

// The weekly run is gated to Monday before 6am local time.
const (
	triggerWeekday = time.Monday
	triggerHourCap = 6
)

// ShouldRun reports whether now falls inside the weekly trigger
// window. Pure check, no bookkeeping: the caller is responsible for
// firing at most once per window.
func ShouldRun(now time.Time) bool {
	return now.Weekday() == triggerWeekday && now.Hour() < triggerHourCap
}
