package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/completions"
	"github.com/mslepko/simple-workouts-tracker/internal/config"
	"github.com/mslepko/simple-workouts-tracker/internal/db"
	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/middleware"
	"github.com/mslepko/simple-workouts-tracker/internal/stats"
	"github.com/mslepko/simple-workouts-tracker/internal/streak"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/metrics"
	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/tracing"
	"github.com/mslepko/simple-workouts-tracker/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client
	streakCache *streak.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config         *config.Config
	RedisPassword  string
	VersionInfo    string
	TracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("workouts", "tracker", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.Setup(params.TracingEnabled, "workouts-tracker")
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	streakCacheTTL := time.Duration(params.Config.StreakCacheTTL) * time.Minute

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		streakCache: streak.NewCache(rdb, streakCacheTTL),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("workouts-router"))

	exercisesRepo := exercises.NewRepo(s.dbPool)
	completionsRepo := completions.NewRepo(s.dbPool)
	completionsService := completions.NewService(completionsRepo, exercisesRepo, s.streakCache)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	rateLimited := middleware.RateLimit(
		reqRateLimiter,
		"workouts-mutations",
		s.config.MutationsRateLimitAllowedPerMin,
	)

	exercisesHandler := exercises.NewHandler(exercisesRepo, s.streakCache, s.metricsManager)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercises", rateLimited(http.HandlerFunc(exercisesHandler.HandleAdd))).Methods("POST", "OPTIONS").Name("new-exercise")
	r.Handle("/exercises", rateLimited(http.HandlerFunc(exercisesHandler.HandleUpdate))).Methods("PUT", "OPTIONS").Name("update-exercise")

	statsHandler := stats.NewHandler(stats.NewAnalyzer(
		stats.NewRepo(s.dbPool),
		exercisesRepo,
		completionsService,
	))
	r.HandleFunc("/exercises/scheduled", statsHandler.HandleScheduled).Methods("GET", "OPTIONS").Name("scheduled-exercises")

	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.Handle("/exercises/{id}", rateLimited(http.HandlerFunc(exercisesHandler.HandleDelete))).Methods("DELETE", "OPTIONS").Name("remove-exercise")

	completionsHandler := completions.NewHandler(completionsService, s.metricsManager)
	r.Handle("/completions/toggle", rateLimited(http.HandlerFunc(completionsHandler.HandleToggle))).Methods("POST", "OPTIONS").Name("toggle-completion")

	r.HandleFunc("/history", statsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("history")
	r.HandleFunc("/stats/cumulative", statsHandler.HandleCumulative).Methods("GET", "OPTIONS").Name("cumulative-stats")
	r.HandleFunc("/calendar/{year}/{month}", statsHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("calendar-summary")

	streakHandler := streak.NewHandler(streak.NewService(
		exercisesRepo,
		completionsRepo,
		s.streakCache,
	))
	r.HandleFunc("/streaks", streakHandler.HandleStreaks).Methods("GET", "OPTIONS").Name("streaks")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("workouts service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
