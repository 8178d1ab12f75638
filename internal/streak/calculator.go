package streak

import (
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
)

// MaxLookbackDays bounds the backward walk so a never-broken streak
// terminates after roughly a year.
const MaxLookbackDays = 365

// Current counts consecutive completed occurrences of an exercise,
// walking backward day by day from asOf. Days the exercise is not
// scheduled on are skipped without affecting the count. The walk
// stops at the first scheduled day with no completion, asOf included.
// The completed map is keyed by date in 2006-01-02 form.
func Current(days schedule.DaySet, completed map[string]bool, asOf time.Time) int {
	streakCount := 0
	cursor := schedule.DateOnly(asOf)
	for scanned := 0; scanned < MaxLookbackDays; scanned++ {
		if schedule.IsScheduled(days, cursor) {
			if !completed[schedule.FormatDate(cursor)] {
				break
			}
			streakCount++
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streakCount
}
