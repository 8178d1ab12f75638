package completions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCompletionNotFound = errors.New("completion not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert records a completion, overwriting any previous snapshot for the
// same (exercise, date) key. No toggle history is kept.
func (r *Repo) Upsert(ctx context.Context, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", record.ExerciseID))
	span.SetAttributes(attribute.String("date", schedule.FormatDate(record.Date)))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_log
				(exercise_id, completed_date, completed_sets, completed_reps, completed_time, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (exercise_id, completed_date) DO UPDATE SET
				completed_sets = EXCLUDED.completed_sets,
				completed_reps = EXCLUDED.completed_reps,
				completed_time = EXCLUDED.completed_time;`,
		record.ExerciseID, schedule.DateOnly(record.Date),
		record.Snapshot.Sets, record.Snapshot.Reps, record.Snapshot.Time,
		record.CreatedAt,
	)
	return err
}

// Delete clears a completion. Clearing a non-existent record is a no-op.
func (r *Repo) Delete(ctx context.Context, exerciseID int, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.String("date", schedule.FormatDate(date)))

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE exercise_id = $1 AND completed_date = $2;`,
		exerciseID, schedule.DateOnly(date),
	)
	return err
}

func (r *Repo) Get(ctx context.Context, exerciseID int, date time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.String("date", schedule.FormatDate(date)))

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, completed_date, completed_sets, completed_reps, completed_time, created_at
			FROM workout_log
			WHERE exercise_id = $1 AND completed_date = $2;`,
		exerciseID, schedule.DateOnly(date),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, ErrCompletionNotFound
	}
	return &records[0], nil
}

// ListForDate returns all completions recorded on the given date.
func (r *Repo) ListForDate(ctx context.Context, date time.Time) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.listForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", schedule.FormatDate(date)))

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, completed_date, completed_sets, completed_reps, completed_time, created_at
			FROM workout_log
			WHERE completed_date = $1;`,
		schedule.DateOnly(date),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2records(rows)
}

// CompletedDates returns the set of dates an exercise was completed on,
// from the given date (inclusive) backwards. Used by the streak walk, so
// one query replaces up to a year of per-day lookups.
func (r *Repo) CompletedDates(ctx context.Context, exerciseID int, from, to time.Time) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.completedDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.String("from", schedule.FormatDate(from)))
	span.SetAttributes(attribute.String("to", schedule.FormatDate(to)))

	rows, err := r.db.Query(
		ctx,
		`SELECT completed_date FROM workout_log
			WHERE exercise_id = $1 AND completed_date >= $2 AND completed_date <= $3;`,
		exerciseID, schedule.DateOnly(from), schedule.DateOnly(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	dates := make(map[string]bool)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates[schedule.FormatDate(date)] = true
	}
	return dates, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var exerciseID int
		var date time.Time
		var sets int
		var reps *int
		var completedTime *int
		var createdAt time.Time
		if err := rows.Scan(&exerciseID, &date, &sets, &reps, &completedTime, &createdAt); err != nil {
			return nil, err
		}

		records = append(records, Record{
			ExerciseID: exerciseID,
			Date:       date,
			Snapshot: Snapshot{
				Sets: sets,
				Reps: reps,
				Time: completedTime,
			},
			CreatedAt: createdAt,
		})
	}

	if records == nil {
		records = make([]Record, 0)
	}
	return records, nil
}
