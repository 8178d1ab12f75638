package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const defaultHistoryDays = 30

type statsAnalyzer interface {
	ScheduledFor(ctx context.Context, date time.Time) ([]ScheduledExercise, error)
	History(ctx context.Context, daysBack int) ([]HistoryEntry, error)
	Cumulative(ctx context.Context) ([]CumulativeStat, error)
	CalendarSummary(ctx context.Context, year int, month time.Month) (map[string]int, error)
}

type Handler struct {
	analyzer statsAnalyzer
}

func NewHandler(analyzer statsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// HandleScheduled lists the exercises due on a date (default today),
// each with its completion status for that date.
func (handler *Handler) HandleScheduled(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.scheduled")
	defer span.End()

	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		var err error
		date, err = schedule.ParseDate(dateParam)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
	}

	scheduled, err := handler.analyzer.ScheduledFor(ctx, date)
	if err != nil {
		log.Errorf("scheduled exercises error: %s", err)
		http.Error(w, "failed to get scheduled exercises", http.StatusInternalServerError)
		return
	}

	scheduledJson, err := json.Marshal(scheduled)
	if err != nil {
		log.Errorf("marshal scheduled exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, scheduledJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.history")
	defer span.End()

	daysBack := defaultHistoryDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		daysBack, err = strconv.Atoi(daysParam)
		if err != nil || daysBack <= 0 {
			http.Error(w, "error, invalid days param", http.StatusBadRequest)
			return
		}
	}

	entries, err := handler.analyzer.History(ctx, daysBack)
	if err != nil {
		log.Errorf("get history error: %s", err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}

	historyJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal history error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandleCumulative(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.cumulative")
	defer span.End()

	cumulativeStats, err := handler.analyzer.Cumulative(ctx)
	if err != nil {
		log.Errorf("get cumulative stats error: %s", err)
		http.Error(w, "failed to get cumulative stats", http.StatusInternalServerError)
		return
	}
	if cumulativeStats == nil {
		cumulativeStats = []CumulativeStat{}
	}

	statsJson, err := json.Marshal(cumulativeStats)
	if err != nil {
		log.Errorf("marshal cumulative stats error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(vars["month"])
	if err != nil || monthNum < 1 || monthNum > 12 {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}

	counts, err := handler.analyzer.CalendarSummary(ctx, year, time.Month(monthNum))
	if err != nil {
		log.Errorf("get calendar summary error: %s", err)
		http.Error(w, "failed to get calendar summary", http.StatusInternalServerError)
		return
	}

	countsJson, err := json.Marshal(counts)
	if err != nil {
		log.Errorf("marshal calendar summary error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, countsJson, http.StatusOK)
}
