package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultArchiveFlushSize     = 500
	defaultArchiveFlushInterval = 2 * time.Second
	defaultArchiveRPS           = 20
)

type ArchiveOptions struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Archive buffers synced rows and writes them to ClickHouse in batches. Writes are
// asynchronous: WriteBlock only queues rows and flush failures are logged.
type Archive struct {
	blocks *batcher.Batcher[model.Block]
	txs    *batcher.Batcher[model.Transaction]
	legs   *batcher.Batcher[SaleLeg]
	logger *zap.Logger
}

func NewArchive(writer Writer, opts ArchiveOptions, logger *zap.Logger) *Archive {
	if opts.FlushSize <= 0 {
		opts.FlushSize = defaultArchiveFlushSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultArchiveFlushInterval
	}
	if opts.RPS <= 0 {
		opts.RPS = defaultArchiveRPS
	}
	logger = logger.Named("clickhouse_archive")
	bo := batcher.Options{Size: opts.FlushSize, Interval: opts.FlushInterval, RPS: opts.RPS}

	return &Archive{
		blocks: batcher.New[model.Block](logger.With(zap.String("table", "vfx_blocks")), writer.InsertBlocks, bo),
		txs:    batcher.New[model.Transaction](logger.With(zap.String("table", "vfx_transactions")), writer.InsertTransactions, bo),
		legs:   batcher.New[SaleLeg](logger.With(zap.String("table", "vfx_sale_legs")), writer.InsertSaleLegs, bo),
		logger: logger,
	}
}

// Start launches the flush loops. They stop when ctx is done or Stop is called.
func (a *Archive) Start(ctx context.Context) {
	a.blocks.Start(ctx)
	a.txs.Start(ctx)
	a.legs.Start(ctx)
}

// Stop flushes whatever is buffered and waits for the loops to exit.
func (a *Archive) Stop() {
	a.blocks.Stop()
	a.txs.Stop()
	a.legs.Stop()
}

// WriteBlock queues a block with its transactions and the legs of completed sales.
func (a *Archive) WriteBlock(ctx context.Context, block model.Block, txs []model.Transaction) error {
	if err := a.blocks.Add(ctx, block); err != nil {
		return fmt.Errorf("queue block %d: %w", block.Height, err)
	}
	for _, tx := range txs {
		if err := a.txs.Add(ctx, tx); err != nil {
			return fmt.Errorf("queue transaction %s: %w", tx.Hash, err)
		}

		legs, err := SaleLegs(tx)
		if err != nil {
			a.logger.Debug("sale legs skipped", zap.String("hash", tx.Hash), zap.Error(err))
			continue
		}
		for _, leg := range legs {
			if err := a.legs.Add(ctx, leg); err != nil {
				return fmt.Errorf("queue sale leg %s: %w", leg.ID, err)
			}
		}
	}
	return nil
}
