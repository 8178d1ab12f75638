package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/config"
	"github.com/mslepko/simple-workouts-tracker/internal/db"
	"github.com/mslepko/simple-workouts-tracker/internal/exercises"
	"github.com/mslepko/simple-workouts-tracker/internal/logging"
	"github.com/mslepko/simple-workouts-tracker/internal/progression"

	log "github.com/sirupsen/logrus"
)

// Meant to run from cron every Monday morning. The gate keeps a
// mis-scheduled cron entry from bumping targets mid-week; -force
// skips it for manual runs.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	force := flag.Bool("force", false, "run the increment regardless of the weekly trigger window")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	now := time.Now()
	if !*force && !progression.ShouldRun(now) {
		log.Infof("weekly increment: outside trigger window [%s], nothing to do", now.Format(time.RFC1123))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Errorf("weekly increment, new db pool: %s", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	engine := progression.NewEngine(exercises.NewRepo(dbPool), nil)
	report, err := engine.Run(ctx)
	if err != nil {
		log.Errorf("weekly increment run: %s", err)
		os.Exit(1)
	}

	for _, change := range report.Updated {
		log.Infof("weekly increment: [%s] %d -> %d", change.Name, change.OldValue, change.NewValue)
	}
	for _, atLimit := range report.AtLimit {
		log.Infof("weekly increment: [%s] already at limit %d", atLimit.Name, atLimit.Value)
	}
	log.Infof("weekly increment done: %d updated, %d at limit", len(report.Updated), len(report.AtLimit))
}
