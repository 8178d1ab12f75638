package exercises

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

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(name, target_value, sets_target, scheduled_days, value_type, time_unit, increment_value, limit_value, is_paused, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		exercise.Name, exercise.TargetValue, exercise.SetsTarget,
		exercise.ScheduledDays.String(),
		exercise.ValueType, exercise.TimeUnit,
		exercise.IncrementValue, exercise.LimitValue, exercise.IsPaused,
		exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, name, target_value, sets_target, scheduled_days, value_type, time_unit, increment_value, limit_value, is_paused, created_at
		FROM exercise
		WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// List returns all exercises, name-ordered.
func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, name, target_value, sets_target, scheduled_days, value_type, time_unit, increment_value, limit_value, is_paused, created_at
		FROM exercise
		ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET
			name = $1, target_value = $2, sets_target = $3, scheduled_days = $4,
			value_type = $5, time_unit = $6, increment_value = $7, limit_value = $8, is_paused = $9
		WHERE id = $10;`,
		exercise.Name, exercise.TargetValue, exercise.SetsTarget,
		exercise.ScheduledDays.String(),
		exercise.ValueType, exercise.TimeUnit,
		exercise.IncrementValue, exercise.LimitValue, exercise.IsPaused,
		exercise.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// UpdateTargetValue bumps only the target value - the progression engine's
// single-row write. Snapshots in the workout log are never touched.
func (r *Repo) UpdateTargetValue(ctx context.Context, id, targetValue int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.updateTargetValue")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.Int("target_value", targetValue))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET target_value = $1 WHERE id = $2;`,
		targetValue, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// Delete removes the exercise together with its workout log rows.
// Runs in a transaction so a half-deleted exercise is never observable.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM workout_log WHERE exercise_id = $1;`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var id int
		var name string
		var targetValue int
		var setsTarget int
		var scheduledDays string
		var valueType string
		var timeUnit string
		var incrementValue int
		var limitValue *int
		var isPaused bool
		var createdAt time.Time
		if err := rows.Scan(
			&id, &name, &targetValue, &setsTarget, &scheduledDays,
			&valueType, &timeUnit, &incrementValue, &limitValue, &isPaused, &createdAt,
		); err != nil {
			return nil, err
		}

		days, err := schedule.ParseDaySet(scheduledDays)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled days for exercise %d: %w", id, err)
		}

		exercises = append(exercises, Exercise{
			ID:             id,
			Name:           name,
			TargetValue:    targetValue,
			SetsTarget:     setsTarget,
			ScheduledDays:  days,
			ValueType:      ValueType(valueType),
			TimeUnit:       TimeUnit(timeUnit),
			IncrementValue: incrementValue,
			LimitValue:     limitValue,
			IsPaused:       isPaused,
			CreatedAt:      createdAt,
		})
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}

	return exercises, nil
}
