package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/completions"
	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type exercisesLister interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
}

type dayStatusesProvider interface {
	StatusesForDate(ctx context.Context, date time.Time) (map[int]completions.DayStatus, error)
}

type statsRepo interface {
	History(ctx context.Context, daysBack int) ([]HistoryEntry, error)
	Cumulative(ctx context.Context) ([]CumulativeStat, error)
	CalendarCounts(ctx context.Context, year int, month time.Month) (map[string]int, error)
}

// ScheduledExercise is an exercise due on a requested date together
// with its tagged completion state for that date.
type ScheduledExercise struct {
	exercises.Exercise
	completions.DayStatus
}

type Analyzer struct {
	repo      statsRepo
	exercises exercisesLister
	statuses  dayStatusesProvider
}

func NewAnalyzer(repo statsRepo, exercisesLister exercisesLister, statuses dayStatusesProvider) *Analyzer {
	return &Analyzer{
		repo:      repo,
		exercises: exercisesLister,
		statuses:  statuses,
	}
}

// ScheduledFor merges the registry and the completion log into the
// daily view: every exercise due on date, name-ordered, each with its
// completion state for that date.
func (a *Analyzer) ScheduledFor(ctx context.Context, date time.Time) (_ []ScheduledExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.scheduledFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", schedule.FormatDate(date)))

	exercisesList, err := a.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	statuses, err := a.statuses.StatusesForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("statuses for date: %w", err)
	}

	scheduled := make([]ScheduledExercise, 0)
	for _, exercise := range exercisesList {
		if !schedule.IsScheduled(exercise.ScheduledDays, date) {
			continue
		}
		status, ok := statuses[exercise.ID]
		if !ok {
			status = completions.NotCompleted()
		}
		scheduled = append(scheduled, ScheduledExercise{
			Exercise:  exercise,
			DayStatus: status,
		})
	}

	return scheduled, nil
}

func (a *Analyzer) History(ctx context.Context, daysBack int) ([]HistoryEntry, error) {
	return a.repo.History(ctx, daysBack)
}

func (a *Analyzer) Cumulative(ctx context.Context) ([]CumulativeStat, error) {
	return a.repo.Cumulative(ctx)
}

func (a *Analyzer) CalendarSummary(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	return a.repo.CalendarCounts(ctx, year, month)
}
