package main

import (
	"context"
	"os"
	"strings"

	"biblioteca-backend/internal/platform/config"
	"biblioteca-backend/internal/platform/db"
	"biblioteca-backend/internal/platform/logger"
	"biblioteca-backend/internal/platform/validation"
	"biblioteca-backend/internal/server"
)

// @title       Biblioteca API
// @version     1.0
// @description Students, books and loans of a school library.
// @host        localhost:8080
// @BasePath    /
// @schemes     http https

func main() {
	// load config (file path may be given as the first argument)
	path := config.DefaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}

	// logging
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})
	logger.Info().Str("mode", cfg.Mode).Str("version", cfg.Version).Msg("starting")

	// binding rules used by the request DTOs
	if err := validation.Register(); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validators")
	}

	// connect to the DB
	conn, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to connect to database")
	}
	logger.Info().Str("driver", cfg.DB.Driver).Str("dbname", cfg.DB.DBName).Msg("connected to DB")

	// schema
	if cfg.DB.Migrate {
		if err := db.NewMigrator(conn).Migrate(context.Background()); err != nil {
			conn.Close()
			logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	// serve until SIGINT/SIGTERM; Run closes conn once the HTTP server has drained
	if err := server.New(cfg, conn).Run(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("bye")
}
