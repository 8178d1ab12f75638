package streak

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=streak_test

type streaksService interface {
	Streaks(ctx context.Context) ([]ExerciseStreak, error)
}

type Handler struct {
	service streaksService
}

func NewHandler(service streaksService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streaks.list")
	defer span.End()

	exerciseStreaks, err := handler.service.Streaks(ctx)
	if err != nil {
		log.Errorf("get streaks error: %s", err)
		http.Error(w, "failed to get streaks", http.StatusInternalServerError)
		return
	}

	streaksJson, err := json.Marshal(exerciseStreaks)
	if err != nil {
		log.Errorf("marshal streaks error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streaksJson, http.StatusOK)
}
