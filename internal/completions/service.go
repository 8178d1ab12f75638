package completions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=completions_test

type completionsRepo interface {
	Upsert(ctx context.Context, record Record) error
	Delete(ctx context.Context, exerciseID int, date time.Time) error
	Get(ctx context.Context, exerciseID int, date time.Time) (*Record, error)
	ListForDate(ctx context.Context, date time.Time) ([]Record, error)
}

type exerciseGetter interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

// streakInvalidator drops cached streak results after a completion change.
type streakInvalidator interface {
	Invalidate(ctx context.Context, exerciseID int) error
}

type ToggleParams struct {
	ExerciseID int
	Date       time.Time
	Completed  bool
	// Performed carries caller-supplied values for historical toggles;
	// nil means "capture the exercise's current planned values".
	Performed *Snapshot
}

type Service struct {
	repo        completionsRepo
	exercises   exerciseGetter
	streakCache streakInvalidator
}

func NewService(repo completionsRepo, exercises exerciseGetter, streakCache streakInvalidator) *Service {
	return &Service{
		repo:        repo,
		exercises:   exercises,
		streakCache: streakCache,
	}
}

// Toggle marks or unmarks a completion. Unmarking deletes the record
// (clearing an absent record is a no-op); marking upserts the snapshot and
// is idempotent for the same performed values.
func (s *Service) Toggle(ctx context.Context, params ToggleParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", params.ExerciseID))
	span.SetAttributes(attribute.String("date", schedule.FormatDate(params.Date)))
	span.SetAttributes(attribute.Bool("completed", params.Completed))

	if !params.Completed {
		if err := s.repo.Delete(ctx, params.ExerciseID, params.Date); err != nil {
			return fmt.Errorf("clear completion: %w", err)
		}
		s.invalidateStreaks(ctx, params.ExerciseID)
		return nil
	}

	exercise, err := s.exercises.Get(ctx, params.ExerciseID)
	if err != nil {
		return fmt.Errorf("get exercise: %w", err)
	}

	snapshot := s.buildSnapshot(*exercise, params.Performed)
	if err := s.repo.Upsert(ctx, Record{
		ExerciseID: params.ExerciseID,
		Date:       schedule.DateOnly(params.Date),
		Snapshot:   snapshot,
		CreatedAt:  time.Now(),
	}); err != nil {
		// the exercise can vanish between the Get above and the insert
		// when a delete races the toggle
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("record completion: %w", exercises.ErrExerciseNotFound)
		}
		return fmt.Errorf("record completion: %w", err)
	}

	s.invalidateStreaks(ctx, params.ExerciseID)
	return nil
}

// buildSnapshot freezes the performed values. Caller-supplied values win
// (historical toggles re-use the snapshot the client already holds);
// otherwise the exercise's current planned values are captured, with time
// targets converted to seconds before storage.
func (s *Service) buildSnapshot(exercise exercises.Exercise, performed *Snapshot) Snapshot {
	if performed != nil {
		return *performed
	}

	snapshot := Snapshot{Sets: exercise.SetsTarget}
	if exercise.ValueType == exercises.ValueTypeTime {
		seconds := exercise.TargetValueSeconds()
		snapshot.Time = &seconds
	} else {
		reps := exercise.TargetValue
		snapshot.Reps = &reps
	}
	return snapshot
}

// StatusFor translates record presence into the tagged completion state.
func (s *Service) StatusFor(ctx context.Context, exerciseID int, date time.Time) (_ DayStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.statusFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record, err := s.repo.Get(ctx, exerciseID, date)
	if errors.Is(err, ErrCompletionNotFound) {
		return NotCompleted(), nil
	}
	if err != nil {
		return NotCompleted(), fmt.Errorf("get completion: %w", err)
	}
	return Completed(record.Snapshot), nil
}

// StatusesForDate returns the tagged state for every exercise completed on
// the given date, keyed by exercise id. Exercises absent from the map were
// not completed.
func (s *Service) StatusesForDate(ctx context.Context, date time.Time) (_ map[int]DayStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.statusesForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}

	statuses := make(map[int]DayStatus, len(records))
	for _, record := range records {
		statuses[record.ExerciseID] = Completed(record.Snapshot)
	}
	return statuses, nil
}

func (s *Service) invalidateStreaks(ctx context.Context, exerciseID int) {
	if s.streakCache == nil {
		return
	}
	if err := s.streakCache.Invalidate(ctx, exerciseID); err != nil {
		// cached streaks expire on their own, a failed invalidation only
		// delays freshness
		log.Warnf("failed to invalidate streak cache: %s", err)
	}
}
