package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/devhamz/shoprex-golang/internal/config"
	"github.com/rs/zerolog"

	_ "github.com/lib/pq"
)

// Open builds the connection pool for whichever mode the config selected.
// Hosted deployments hand us a full connection string and must talk TLS;
// local development uses the discrete fields with sslmode=disable.
//
// A failed startup ping is logged but does not abort: the process keeps
// serving and individual queries fail until the database comes back.
func Open(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	dsn := buildDSN(cfg)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Bool("production", cfg.Production).Msg("database connection failed")
		return db, nil
	}

	if cfg.Production {
		logger.Info().Msg("connected to hosted database")
	} else {
		logger.Info().Msg("connected to local database")
	}
	return db, nil
}

func buildDSN(cfg *config.Config) string {
	if cfg.Production {
		dsn := cfg.DatabaseURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
}
