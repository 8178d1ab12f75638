package stats

import (
	"context"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// HistoryEntry is one logged completion joined with its exercise name.
// Rows exist only for completed days, so Completed is always true here;
// the field is kept explicit so the payload never implies otherwise.
type HistoryEntry struct {
	ExerciseID    int    `json:"exerciseId"`
	ExerciseName  string `json:"exerciseName"`
	Date          string `json:"date"`
	Completed     bool   `json:"completed"`
	CompletedSets int    `json:"completedSets"`
	CompletedReps *int   `json:"completedReps,omitempty"`
	CompletedTime *int   `json:"completedTime,omitempty"`
}

// CumulativeStat aggregates all logged occurrences of one exercise.
// TotalValue uses the exercise's current targets, not the snapshots
// frozen at completion time.
type CumulativeStat struct {
	ExerciseID       int    `json:"exerciseId"`
	ExerciseName     string `json:"exerciseName"`
	ValueType        string `json:"valueType"`
	TotalOccurrences int    `json:"totalOccurrences"`
	TotalValue       int    `json:"totalValue"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// History returns logged completions from the last daysBack days,
// most recent first.
func (r *Repo) History(ctx context.Context, daysBack int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.repo.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("daysBack", daysBack))

	since := schedule.DateOnly(time.Now()).AddDate(0, 0, -daysBack)
	rows, err := r.db.Query(ctx, `
			SELECT
				w.exercise_id, e.name, w.completed_date,
				w.completed_sets, w.completed_reps, w.completed_time
			FROM workout_log w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.completed_date >= $1
			ORDER BY w.completed_date DESC, e.name;`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var completedDate time.Time
		if err := rows.Scan(
			&entry.ExerciseID, &entry.ExerciseName, &completedDate,
			&entry.CompletedSets, &entry.CompletedReps, &entry.CompletedTime,
		); err != nil {
			return nil, err
		}
		entry.Date = schedule.FormatDate(completedDate)
		entry.Completed = true
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return entries, nil
}

// Cumulative returns per-exercise occurrence counts and the total value
// at the exercise's current targets (occurrences * sets * target).
func (r *Repo) Cumulative(ctx context.Context) (_ []CumulativeStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.repo.cumulative")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
			SELECT
				e.id, e.name, e.value_type,
				COUNT(w.exercise_id) AS occurrences,
				COUNT(w.exercise_id) * e.sets_target * e.target_value AS total_value
			FROM exercise e
			LEFT JOIN workout_log w ON w.exercise_id = e.id
			GROUP BY e.id, e.name, e.value_type, e.sets_target, e.target_value
			ORDER BY e.name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cumulativeStats []CumulativeStat
	for rows.Next() {
		var stat CumulativeStat
		if err := rows.Scan(
			&stat.ExerciseID, &stat.ExerciseName, &stat.ValueType,
			&stat.TotalOccurrences, &stat.TotalValue,
		); err != nil {
			return nil, err
		}
		cumulativeStats = append(cumulativeStats, stat)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return cumulativeStats, nil
}

// CalendarCounts returns, for each date of a month with at least one
// completion, the number of distinct exercises completed on it. Keys
// are dates in 2006-01-02 form.
func (r *Repo) CalendarCounts(ctx context.Context, year int, month time.Month) (_ map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.repo.calendarCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("year", year),
		attribute.Int("month", int(month)),
	)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)
	rows, err := r.db.Query(ctx, `
			SELECT completed_date, COUNT(DISTINCT exercise_id)
			FROM workout_log
			WHERE completed_date >= $1 AND completed_date < $2
			GROUP BY completed_date;`,
		monthStart, monthEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var completedDate time.Time
		var count int
		if err := rows.Scan(&completedDate, &count); err != nil {
			return nil, err
		}
		counts[schedule.FormatDate(completedDate)] = count
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return counts, nil
}
