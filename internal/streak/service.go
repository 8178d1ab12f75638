package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=streak_test

type exercisesLister interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
}

type completedDatesProvider interface {
	CompletedDates(ctx context.Context, exerciseID int, from, to time.Time) (map[string]bool, error)
}

type streakCache interface {
	Get(ctx context.Context, exerciseID int, asOf time.Time) (streakCount int, found bool, err error)
	Set(ctx context.Context, exerciseID int, asOf time.Time, streakCount int) error
}

// ExerciseStreak is the current streak of one exercise.
type ExerciseStreak struct {
	ExerciseID    int    `json:"exerciseId"`
	Name          string `json:"name"`
	CurrentStreak int    `json:"currentStreak"`
}

type Service struct {
	exercises   exercisesLister
	completions completedDatesProvider
	cache       streakCache

	// NowFunc is swapped in tests to pin the walk start date
	NowFunc func() time.Time
}

func NewService(
	exercisesLister exercisesLister,
	completions completedDatesProvider,
	cache streakCache,
) *Service {
	return &Service{
		exercises:   exercisesLister,
		completions: completions,
		cache:       cache,
		NowFunc:     time.Now,
	}
}

// Streaks computes the current streak for every exercise, name-ordered
// as returned by the registry. Cached values are used when present.
func (s *Service) Streaks(ctx context.Context) (_ []ExerciseStreak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streak.service.streaks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesList, err := s.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	asOf := schedule.DateOnly(s.NowFunc())
	exerciseStreaks := make([]ExerciseStreak, 0, len(exercisesList))
	for _, exercise := range exercisesList {
		streakCount, err := s.streakFor(ctx, exercise, asOf)
		if err != nil {
			return nil, fmt.Errorf("streak for exercise %d: %w", exercise.ID, err)
		}
		exerciseStreaks = append(exerciseStreaks, ExerciseStreak{
			ExerciseID:    exercise.ID,
			Name:          exercise.Name,
			CurrentStreak: streakCount,
		})
	}

	span.SetAttributes(attribute.Int("exercises", len(exerciseStreaks)))

	return exerciseStreaks, nil
}

func (s *Service) streakFor(ctx context.Context, exercise exercises.Exercise, asOf time.Time) (int, error) {
	if cached, found, err := s.cache.Get(ctx, exercise.ID, asOf); err != nil {
		log.Warnf("streak cache get for exercise %d: %s", exercise.ID, err)
	} else if found {
		return cached, nil
	}

	from := asOf.AddDate(0, 0, -MaxLookbackDays)
	completed, err := s.completions.CompletedDates(ctx, exercise.ID, from, asOf)
	if err != nil {
		return 0, fmt.Errorf("completed dates: %w", err)
	}

	streakCount := Current(exercise.ScheduledDays, completed, asOf)

	if err := s.cache.Set(ctx, exercise.ID, asOf, streakCount); err != nil {
		log.Warnf("streak cache set for exercise %d: %s", exercise.ID, err)
	}

	return streakCount, nil
}
