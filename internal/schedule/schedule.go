package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday indices follow time.Weekday: 0 = Sunday .. 6 = Saturday.
// The same numbering is used in the stored comma list (e.g. "1,3,5"),
// in the JSON payloads and in the streak walk - do not re-derive it.
const (
	MinWeekday = int(time.Sunday)
	MaxWeekday = int(time.Saturday)
)

// DaySet is the set of weekdays an exercise is scheduled on.
type DaySet []time.Weekday

// ParseDaySet parses the stored comma list of weekday indices, e.g. "1,3,5".
func ParseDaySet(s string) (DaySet, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty day set")
	}

	seen := make(map[time.Weekday]bool)
	var days DaySet
	for _, part := range strings.Split(s, ",") {
		dayNum, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weekday [%s]: %w", part, err)
		}
		if dayNum < MinWeekday || dayNum > MaxWeekday {
			return nil, fmt.Errorf("weekday %d out of range [0-6]", dayNum)
		}
		day := time.Weekday(dayNum)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}

// NewDaySet builds a DaySet from weekday indices, rejecting out of range values.
func NewDaySet(dayNums []int) (DaySet, error) {
	if len(dayNums) == 0 {
		return nil, fmt.Errorf("empty day set")
	}

	parts := make([]string, 0, len(dayNums))
	for _, d := range dayNums {
		parts = append(parts, strconv.Itoa(d))
	}
	return ParseDaySet(strings.Join(parts, ","))
}

// String renders the stored comma list form, e.g. "1,3,5".
func (ds DaySet) String() string {
	parts := make([]string, 0, len(ds))
	for _, day := range ds {
		parts = append(parts, strconv.Itoa(int(day)))
	}
	return strings.Join(parts, ",")
}

func (ds DaySet) Contains(day time.Weekday) bool {
	for _, d := range ds {
		if d == day {
			return true
		}
	}
	return false
}

// Indices returns the weekday numbers, for JSON payloads.
func (ds DaySet) Indices() []int {
	nums := make([]int, 0, len(ds))
	for _, day := range ds {
		nums = append(nums, int(day))
	}
	return nums
}

// IsScheduled reports whether date falls on one of the scheduled weekdays.
// Pure - same (days, date) always yields the same answer.
func IsScheduled(days DaySet, date time.Time) bool {
	return days.Contains(date.Weekday())
}
