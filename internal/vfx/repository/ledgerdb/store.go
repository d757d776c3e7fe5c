// Package ledgerdb persists the ledger in a relational database through gorm.
package ledgerdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultBatchSize = 1000
)

// ErrNotFound is returned when a looked up row does not exist.
var ErrNotFound = errors.New("ledger row not found")

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Store is the ledger repository. A Store obtained inside WithinTx is bound to that
// database transaction.
type Store struct {
	db      *gorm.DB
	metrics Metrics
	logger  *zap.Logger
}

// Open connects to the database, installs tracing and migrates the schema.
func Open(driver, dsn string, metrics Metrics, logger *zap.Logger) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("ledger dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported ledger driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sqlite handle: %w", err)
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("install tracing plugin: %w", err)
	}

	for _, m := range model.All() {
		logger.Debug("migrating table", zap.String("model", fmt.Sprintf("%T", m)))
		if err := db.AutoMigrate(m); err != nil {
			return nil, fmt.Errorf("migrate %T: %w", m, err)
		}
	}

	return &Store{db: db, metrics: metrics, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithinTx runs fn inside one database transaction. Everything fn does through the
// Store it receives commits or rolls back together.
func (s *Store) WithinTx(ctx context.Context, fn func(*Store) error) (err error) {
	defer s.observe("within_tx", time.Now(), &err)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, metrics: s.metrics, logger: s.logger})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store) observe(operation string, started time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	if errors.Is(e, ErrNotFound) {
		e = nil
	}
	s.metrics.Observe(operation, e, started)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
