package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any replicas) and wires pool monitoring into the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	if params.Config.Database.AutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			return nil, errors.Wrap(err, "failed to migrate PostgreSQL schema")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if err := registerPoolCollector(sqlDB); err != nil {
		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPoolWaits(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// registerPoolCollector exports sql.DB pool stats on /metrics.
func registerPoolCollector(sqlDB *sql.DB) error {
	err := prometheus.Register(collectors.NewDBStatsCollector(sqlDB, "contacts"))
	var already prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &already) {
		return errors.Wrap(err, "failed to register PostgreSQL pool metrics")
	}

	return nil
}

// watchPoolWaits warns when request goroutines queue for a connection, since
// every mutation holds one for its whole transaction.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur
			if waits == 0 || waited < dbPoolWarnDurationThreshold {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool saturated",
				slog.Int64("waits", waits),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("inUse", cur.InUse),
				slog.Int("maxOpen", cur.MaxOpenConnections),
			)
		}
	}
}
