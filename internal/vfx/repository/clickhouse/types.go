package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=clickhouse

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Conn is the part of the ClickHouse driver the repository talks to.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
	// Writer persists archive rows. Repository implements it.
	Writer interface {
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		InsertSaleLegs(ctx context.Context, legs []SaleLeg) error
	}
)
