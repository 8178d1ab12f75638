package exercises

import (
	"fmt"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
)

// ValueType says what an exercise target value measures.
type ValueType string

const (
	ValueTypeReps ValueType = "reps"
	ValueTypeTime ValueType = "time"
)

func (vt ValueType) String() string {
	return string(vt)
}

func (vt ValueType) IsValid() bool {
	switch vt {
	case ValueTypeReps, ValueTypeTime:
		return true
	default:
		return false
	}
}

// TimeUnit is the unit of TargetValue when ValueType is "time".
type TimeUnit string

const (
	TimeUnitSeconds TimeUnit = "seconds"
	TimeUnitMinutes TimeUnit = "minutes"
)

func (tu TimeUnit) String() string {
	return string(tu)
}

func (tu TimeUnit) IsValid() bool {
	switch tu {
	case TimeUnitSeconds, TimeUnitMinutes:
		return true
	default:
		return false
	}
}

type Exercise struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	TargetValue    int              `json:"targetValue"`
	SetsTarget     int              `json:"setsTarget"`
	ScheduledDays  schedule.DaySet  `json:"scheduledDays"`
	ValueType      ValueType        `json:"valueType"`
	TimeUnit       TimeUnit         `json:"timeUnit"`
	IncrementValue int              `json:"incrementValue"`
	LimitValue     *int             `json:"limitValue,omitempty"`
	IsPaused       bool             `json:"isPaused"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// TargetValueSeconds returns the target value converted to seconds.
// Only meaningful for time exercises; minutes are converted, seconds kept.
func (e Exercise) TargetValueSeconds() int {
	if e.TimeUnit == TimeUnitMinutes {
		return e.TargetValue * 60
	}
	return e.TargetValue
}

type ValidationError struct {
	Field  string
	Reason string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", ve.Field, ve.Reason)
}

// Validate checks the registry write-time invariants. The limit value is
// deliberately NOT checked against the target value here - clamping is a
// progression-time concern only.
func (e Exercise) Validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Reason: "empty"}
	}
	if len(e.ScheduledDays) == 0 {
		return &ValidationError{Field: "scheduledDays", Reason: "empty"}
	}
	for _, day := range e.ScheduledDays {
		if int(day) < schedule.MinWeekday || int(day) > schedule.MaxWeekday {
			return &ValidationError{
				Field:  "scheduledDays",
				Reason: fmt.Sprintf("weekday %d out of range [0-6]", day),
			}
		}
	}
	if e.TargetValue < 0 {
		return &ValidationError{Field: "targetValue", Reason: "negative"}
	}
	if e.SetsTarget < 0 {
		return &ValidationError{Field: "setsTarget", Reason: "negative"}
	}
	if e.IncrementValue < 0 {
		return &ValidationError{Field: "incrementValue", Reason: "negative"}
	}
	if !e.ValueType.IsValid() {
		return &ValidationError{Field: "valueType", Reason: fmt.Sprintf("unknown value [%s]", e.ValueType)}
	}
	if e.ValueType == ValueTypeTime && !e.TimeUnit.IsValid() {
		return &ValidationError{Field: "timeUnit", Reason: fmt.Sprintf("unknown value [%s]", e.TimeUnit)}
	}
	return nil
}

// Normalize fills the defaults (reps type, seconds unit) and
// canonicalizes the day set, deduplicated and sorted. Out of range
// days are left as-is for Validate to reject.
func (e *Exercise) Normalize() {
	if e.ValueType == "" {
		e.ValueType = ValueTypeReps
	}
	if e.TimeUnit == "" {
		e.TimeUnit = TimeUnitSeconds
	}
	if days, err := schedule.NewDaySet(e.ScheduledDays.Indices()); err == nil {
		e.ScheduledDays = days
	}
}
