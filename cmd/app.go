package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// base общие зависимости всех команд
type base struct {
	cfg       *config.Config
	log       *logger.Logger
	metrics   *metrics.Metrics // nil, если метрики выключены
	rawDB     *sql.DB
	db        *dbmetrics.DB
	txManager *txmanager.TransactionManager
	stopCh    chan struct{}
}

// bootstrap загружает конфигурацию, поднимает логгер и подключение к БД
func bootstrap(ctx context.Context, configPath string) (*base, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)

	b := &base{cfg: cfg, log: log, stopCh: make(chan struct{})}

	if cfg.Metrics.Enabled {
		b.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	b.rawDB = db
	if cfg.Metrics.Enabled {
		b.db = dbmetrics.WrapWithDefault(db, b.metrics, b.stopCh)
		log.Info("Database metrics collection started")
	} else {
		b.db = dbmetrics.Wrap(db, nil)
	}
	b.txManager = txmanager.NewTransactionManager(b.db)

	return b, nil
}

func (b *base) Close() {
	close(b.stopCh)
	if err := b.rawDB.Close(); err != nil {
		b.log.Error("Failed to close database: %v", err)
	}
	b.log.Close()
}
