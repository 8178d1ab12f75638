package main

import (
	"database/sql"
	"flag"

	"github.com/mslepko/simple-workouts-tracker/internal/config"
	"github.com/mslepko/simple-workouts-tracker/internal/db"
	"github.com/mslepko/simple-workouts-tracker/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	down := flag.Bool("down", false, "roll back the last migration instead of migrating up")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	connString := db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	}.ConnString()

	sqlDB, err := sql.Open("pgx", connString)
	if err != nil {
		log.Fatalf("open db: %s", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("close db: %s", err)
		}
	}()

	if *down {
		if err := db.MigrateDown(sqlDB); err != nil {
			log.Fatalf("migrate down: %s", err)
		}
		return
	}

	if err := db.RunMigrations(sqlDB); err != nil {
		log.Fatalf("migrate up: %s", err)
	}
}
