// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

const (
	txTimeout   = time.Minute
	pingTimeout = time.Second * 5
)

type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

// lazyTx opens its transaction on the first statement, requests that never touch
// the database never hold a connection
type lazyTx struct {
	db     *sql.DB
	tx     TxInterface
	cancel context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the request context, bounded by txTimeout
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	tx, err := lt.db.BeginTx(ctx, txOptions)
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) finish(commit bool) error {
	if lt.cancel != nil {
		defer lt.cancel()
	}

	if lt.tx == nil {
		return nil
	}

	if commit {
		return lt.tx.Commit()
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

type DBClient struct {
	pool   *pgxpool.Pool
	db     *sql.DB
	runner sq.BaseRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement runs on the transaction of the context when there is one, on the pool otherwise
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx)
	if !ok {
		return builder.RunWith(d.runner)
	}

	tx, err := lt.get()
	if err != nil {
		d.logger.Errorf("failed to begin transaction, running without: %v", err)
		return builder.RunWith(d.runner)
	}

	return builder.RunWith(tx)
}

// WithTx runs fn with a transaction opened on its first statement.
// The transaction commits when fn succeeds and rolls back otherwise.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db}

	if err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt)); err != nil {
		if rbErr := lt.finish(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := lt.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Ping reports whether the database answers, used by the status endpoint
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := d.db.PingContext(ctx); err != nil {
		d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 0)
		return err
	}

	d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 1)
	return nil
}

// DB exposes the database/sql handle, goose migrations run on it
func (d *DBClient) DB() *sql.DB {
	return d.db
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a new DBClient instance with the provided DSN and configuration options.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Fatalf("DSN validation failed, shutting down, err: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx.NewTracer will use default global TracerProvider, just like our tracer struct
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10 // Add 10% jitter to avoid thundering herd
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		// when tracing is enabled, also collect metrics
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.runner = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}

// NewDBClientFromDB wraps an already opened database, the pool is left unset
func NewDBClientFromDB(sqlDB *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = sqlDB
	d.runner = sqlDB

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
