package completions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/metrics"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=completions_test

type toggleService interface {
	Toggle(ctx context.Context, params ToggleParams) error
}

type ToggleRequest struct {
	ExerciseID    int    `json:"exerciseId"`
	Date          string `json:"date"`
	Completed     bool   `json:"completed"`
	CompletedSets *int   `json:"completedSets,omitempty"`
	CompletedReps *int   `json:"completedReps,omitempty"`
	CompletedTime *int   `json:"completedTime,omitempty"`
}

type ToggleResponse struct {
	ExerciseID int    `json:"exerciseId"`
	Date       string `json:"date"`
	Completed  bool   `json:"completed"`
}

type Handler struct {
	service        toggleService
	metricsManager *metrics.Manager
}

func NewHandler(service toggleService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.toggle")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("toggle completion, unmarshal json params: %s", err)
		http.Error(w, "toggle completion failed", http.StatusBadRequest)
		return
	}

	if req.ExerciseID == 0 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = schedule.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
	}

	var performed *Snapshot
	if req.Completed && (req.CompletedSets != nil || req.CompletedReps != nil || req.CompletedTime != nil) {
		performed = &Snapshot{
			Reps: req.CompletedReps,
			Time: req.CompletedTime,
		}
		if req.CompletedSets != nil {
			performed.Sets = *req.CompletedSets
		}
	}

	err := handler.service.Toggle(ctx, ToggleParams{
		ExerciseID: req.ExerciseID,
		Date:       date,
		Completed:  req.Completed,
		Performed:  performed,
	})
	if errors.Is(err, exercises.ErrExerciseNotFound) {
		log.Debugf("toggle completion, exercise %d not found", req.ExerciseID)
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to toggle completion [exercise %d, %s]: %s", req.ExerciseID, req.Date, err)
		http.Error(w, "error, failed to toggle completion", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterCompletionsToggled.
			WithLabelValues(strconv.FormatBool(req.Completed)).Inc()
	}

	respJson, err := json.Marshal(ToggleResponse{
		ExerciseID: req.ExerciseID,
		Date:       schedule.FormatDate(date),
		Completed:  req.Completed,
	})
	if err != nil {
		log.Errorf("failed to marshal toggle response: %s", err)
		http.Error(w, "failed to marshal toggle response", http.StatusInternalServerError)
		return
	}

	log.Debugf("completion toggled: exercise %d on %s -> %t", req.ExerciseID, schedule.FormatDate(date), req.Completed)
	pkg.WriteJSONResponseOK(w, string(respJson))
}
