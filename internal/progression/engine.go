package progression

import (
	"context"
	"fmt"

	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/metrics"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=progression_test

type exercisesRegistry interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
	UpdateTargetValue(ctx context.Context, id int, targetValue int) error
}

// TargetChange records one exercise's target moving during a run.
type TargetChange struct {
	ExerciseID int    `json:"exerciseId"`
	Name       string `json:"name"`
	OldValue   int    `json:"oldValue"`
	NewValue   int    `json:"newValue"`
}

// AtLimitExercise is an exercise whose target already sits at its
// ceiling, left untouched by a run.
type AtLimitExercise struct {
	ExerciseID int    `json:"exerciseId"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
}

// Report sums up one weekly run.
type Report struct {
	Updated []TargetChange    `json:"updated"`
	AtLimit []AtLimitExercise `json:"atLimit"`
}

// Engine advances every eligible exercise's target by its increment,
// clamped at the optional ceiling. It keeps no record of past runs:
// callers gate it with ShouldRun so a week is bumped once.
type Engine struct {
	registry       exercisesRegistry
	metricsManager *metrics.Manager
}

// NewEngine creates an Engine; metricsManager may be nil for callers
// without a metrics endpoint, such as the cron binary.
func NewEngine(registry exercisesRegistry, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		registry:       registry,
		metricsManager: metricsManager,
	}
}

// Run applies the weekly increment to all exercises. Paused exercises
// and exercises without an increment are skipped silently. A storage
// failure on one exercise is logged and does not stop the others.
func (e *Engine) Run(ctx context.Context) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.engine.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesList, err := e.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	report := &Report{
		Updated: []TargetChange{},
		AtLimit: []AtLimitExercise{},
	}
	for _, exercise := range exercisesList {
		if exercise.IsPaused || exercise.IncrementValue <= 0 {
			continue
		}

		newValue, atLimit := nextTarget(exercise)
		if atLimit {
			report.AtLimit = append(report.AtLimit, AtLimitExercise{
				ExerciseID: exercise.ID,
				Name:       exercise.Name,
				Value:      exercise.TargetValue,
			})
			continue
		}

		if err := e.registry.UpdateTargetValue(ctx, exercise.ID, newValue); err != nil {
			log.Errorf("progression, update exercise %d [%s]: %s", exercise.ID, exercise.Name, err)
			continue
		}

		log.Debugf("progression, exercise %d [%s]: %d -> %d", exercise.ID, exercise.Name, exercise.TargetValue, newValue)
		if e.metricsManager != nil {
			e.metricsManager.CounterProgressionUpdates.Inc()
		}
		report.Updated = append(report.Updated, TargetChange{
			ExerciseID: exercise.ID,
			Name:       exercise.Name,
			OldValue:   exercise.TargetValue,
			NewValue:   newValue,
		})
	}

	span.SetAttributes(
		attribute.Int("updated", len(report.Updated)),
		attribute.Int("atLimit", len(report.AtLimit)),
	)

	return report, nil
}

// nextTarget computes the post-increment target. When the proposed
// value overshoots the ceiling the target is clamped to it; a target
// already at the ceiling reports atLimit instead of changing.
func nextTarget(exercise exercises.Exercise) (newValue int, atLimit bool) {
	proposed := exercise.TargetValue + exercise.IncrementValue
	if exercise.LimitValue == nil || proposed <= *exercise.LimitValue {
		return proposed, false
	}
	if exercise.TargetValue < *exercise.LimitValue {
		return *exercise.LimitValue, false
	}
	return exercise.TargetValue, true
}
