package completions

import "time"

// Snapshot holds the performed values frozen at completion time.
// Time values are always stored in seconds - minutes are converted before
// the snapshot ever reaches the store.
type Snapshot struct {
	Sets int  `json:"sets"`
	Reps *int `json:"reps,omitempty"`
	Time *int `json:"time,omitempty"`
}

// Record is one completion fact: exercise X was done on date Y.
// Keyed by (ExerciseID, Date); absence of a record means not completed.
type Record struct {
	ExerciseID int       `json:"exerciseId"`
	Date       time.Time `json:"date"`
	Snapshot   Snapshot  `json:"snapshot"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DayStatus is the tagged completion state for one exercise-date pair.
// The delete-on-uncheck storage model is translated into this variant in
// exactly one place (the service); consumers never re-infer completion
// from record presence.
type DayStatus struct {
	Completed bool      `json:"completed"`
	Snapshot  *Snapshot `json:"snapshot,omitempty"`
}

func NotCompleted() DayStatus {
	return DayStatus{Completed: false}
}

func Completed(snapshot Snapshot) DayStatus {
	return DayStatus{Completed: true, Snapshot: &snapshot}
}
