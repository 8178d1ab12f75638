package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/metrics"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id int) error
}

// streakInvalidator drops cached streak results after an exercise
// mutation; schedule edits change what counts as a streak.
type streakInvalidator interface {
	Invalidate(ctx context.Context, exerciseID int) error
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateExerciseResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo           exercisesRepo
	streakCache    streakInvalidator
	metricsManager *metrics.Manager
}

func NewHandler(repo exercisesRepo, streakCache streakInvalidator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		streakCache:    streakCache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) invalidateStreaks(ctx context.Context, exerciseID int) {
	if handler.streakCache == nil {
		return
	}
	if err := handler.streakCache.Invalidate(ctx, exerciseID); err != nil {
		log.Warnf("failed to invalidate streak cache for exercise %d: %s", exerciseID, err)
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	exercise.Normalize()
	if err := exercise.Validate(); err != nil {
		log.Debugf("new exercise, validation: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add new exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExercisesCreated.Inc()
	}

	addedExJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal new exercise: %s", err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %s", addedExJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	exJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "failed to marshal exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercisesList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercisesList)
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	exercise.Normalize()
	if err := exercise.Validate(); err != nil {
		log.Debugf("update exercise, validation: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	currentExercise, err := handler.repo.Get(ctx, exercise.ID)
	if errors.Is(err, ErrExerciseNotFound) {
		log.Debugf("exercise %d not found", exercise.ID)
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %d: %s", exercise.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	log.Debugf("update exercise %+v -> %+v", currentExercise, exercise)

	if err := handler.repo.Update(ctx, &exercise); err != nil {
		log.Errorf("failed to update exercise [%d] [%s]: %s", exercise.ID, exercise.Name, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	handler.invalidateStreaks(ctx, exercise.ID)

	updateRespJson, err := json.Marshal(UpdateExerciseResponse{
		UpdatedID: exercise.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			log.Debugf("exercise %d not found", id)
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %d: %s", id, err)
		http.Error(w, "exercise not deleted", http.StatusInternalServerError)
		return
	}

	handler.invalidateStreaks(ctx, id)

	deleteRespJson, err := json.Marshal(DeleteExerciseResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
