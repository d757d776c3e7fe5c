package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/dispatcher"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeSource interface {
		GetBlock(ctx context.Context, height uint64) (*node.Block, error)
		LatestHeight(ctx context.Context) (uint64, error)
	}
	Dispatcher interface {
		Process(ctx context.Context, store *ledgerdb.Store, out *dispatcher.Outbox, tx model.Transaction) error
		Publish(ctx context.Context, out *dispatcher.Outbox)
	}
	BlockNotifier interface {
		NewBlock(ctx context.Context, b model.Block) error
	}
	Archive interface {
		WriteBlock(ctx context.Context, b model.Block, txs []model.Transaction) error
	}
	LocalHeights interface {
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
		MissingBlockHeights(ctx context.Context, start, end uint64) ([]uint64, error)
	}
	Syncer interface {
		Sync(ctx context.Context, height uint64) error
	}
	RangeSyncer interface {
		Backfill(ctx context.Context, start, end uint64) error
		SyncMissing(ctx context.Context, start, end uint64) (int, error)
	}
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
	}

	SyncMetrics interface {
		ObserveSyncBlock(err error, started time.Time)
		ObserveTransactions(created, skipped int)
	}
	FollowerIngesterMetrics interface {
		ObserveFetchMissing(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
	}
	BackfillIngesterMetrics interface {
		ObserveFetchMissing(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
	}
)
