// Package ingester mirrors blocks from the chain node into the ledger store.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/dispatcher"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/policy"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"github.com/karlseguin/ccache/v2"
	"go.uber.org/zap"
)

// SyncDriver ingests single blocks and block ranges.
type SyncDriver struct {
	store         *ledgerdb.Store
	node          NodeSource
	dispatcher    Dispatcher
	notifier      BlockNotifier
	archive       Archive
	metrics       SyncMetrics
	fees          policy.FeeSchedule
	masterNodes   *ccache.Cache
	masterNodeTTL time.Duration
	logger        *zap.Logger
}

// NewSyncDriver builds a SyncDriver. archive may be nil.
func NewSyncDriver(
	store *ledgerdb.Store,
	source NodeSource,
	dispatcher Dispatcher,
	notifier BlockNotifier,
	archive Archive,
	metrics SyncMetrics,
	network model.Network,
	logger *zap.Logger,
) (*SyncDriver, error) {
	if store == nil || source == nil || dispatcher == nil {
		return nil, errors.New("store, node source and dispatcher are required")
	}
	if notifier == nil {
		return nil, errors.New("block notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("sync metrics is required")
	}
	if !network.Valid() {
		return nil, fmt.Errorf("unsupported network %q", network)
	}

	return &SyncDriver{
		store:         store,
		node:          source,
		dispatcher:    dispatcher,
		notifier:      notifier,
		archive:       archive,
		metrics:       metrics,
		fees:          policy.DefaultFeeSchedule(network),
		masterNodes:   ccache.New(ccache.Configure().MaxSize(masterNodeCacheSize)),
		masterNodeTTL: masterNodeCacheTTL,
		logger:        logger.Named("sync").With(zap.String("network", string(network))),
	}, nil
}

// Close stops the master node cache.
func (d *SyncDriver) Close() {
	d.masterNodes.Stop()
}

// Sync ingests the block at height. A block the node does not serve is a no-op.
// Transactions whose hash is already stored are skipped.
//
// The block row, its transactions, their dispatch and the cache deltas commit as one
// unit: a failure leaves no block row behind, so the height is fetched again by the
// follower and reported by gap detection. Collaborator calls queued by the dispatcher
// are published only after the commit.
func (d *SyncDriver) Sync(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		d.metrics.ObserveSyncBlock(err, started)
	}()

	src, err := d.node.GetBlock(ctx, height)
	if errors.Is(err, node.ErrNotFound) {
		d.logger.Debug("block not served by node", zap.Uint64("height", height))
		return nil
	}
	if err != nil {
		return fmt.Errorf("get block %d: %w", height, err)
	}

	masterNode, err := d.masterNode(ctx, src.Validator)
	if err != nil {
		return err
	}

	block, err := convertBlock(src, masterNode)
	if err != nil {
		return err
	}
	candidates := make([]model.Transaction, 0, len(src.Transactions))
	for _, s := range src.Transactions {
		row, err := convertTransaction(s, block)
		if err != nil {
			return err
		}
		candidates = append(candidates, row)
	}

	var (
		created bool
		rows    []model.Transaction
		out     *dispatcher.Outbox
	)
	err = d.store.WithinTx(ctx, func(tx *ledgerdb.Store) error {
		created, rows, out = false, rows[:0], &dispatcher.Outbox{}

		if height == 0 {
			if err := tx.DeleteAllAddresses(ctx); err != nil {
				return err
			}
		}

		var err error
		if created, err = d.storeBlock(ctx, tx, &block, masterNode); err != nil {
			return err
		}

		for _, row := range candidates {
			stored, err := d.apply(ctx, tx, out, row)
			if err != nil {
				return fmt.Errorf("apply tx %s: %w", row.Hash, err)
			}
			if stored {
				rows = append(rows, row)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sync block %d: %w", height, err)
	}
	skipped := len(candidates) - len(rows)
	d.metrics.ObserveTransactions(len(rows), skipped)

	d.dispatcher.Publish(ctx, out)

	if d.archive != nil {
		if err := d.archive.WriteBlock(ctx, block, rows); err != nil {
			d.logger.Warn("archive write failed", zap.Uint64("height", height), zap.Error(err))
		}
	}

	if created {
		if err := d.notifier.NewBlock(ctx, block); err != nil {
			d.logger.Warn("new block notification not sent", zap.Uint64("height", height), zap.Error(err))
		}
	}

	d.logger.Info("synchronized block",
		zap.Uint64("height", height),
		zap.Bool("created", created),
		zap.Int("transactions", len(rows)),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// storeBlock gets or creates the block row and keeps its master node association and
// the master node block count current. It reports whether the row was created.
func (d *SyncDriver) storeBlock(ctx context.Context, tx *ledgerdb.Store, block *model.Block, masterNode *string) (bool, error) {
	created, err := tx.GetOrCreateBlock(ctx, block)
	if err != nil {
		return false, err
	}
	if masterNode == nil {
		return created, nil
	}
	if created {
		return true, tx.IncrementMasterNodeBlockCount(ctx, *masterNode)
	}
	if samePtr(block.MasterNodeAddress, masterNode) {
		return false, nil
	}
	block.MasterNodeAddress = masterNode
	return false, tx.SetBlockMasterNode(ctx, block.Height, masterNode)
}

// apply persists one transaction with its side effects and cache update through the
// block unit. It reports false when the hash was already stored.
func (d *SyncDriver) apply(ctx context.Context, tx *ledgerdb.Store, out *dispatcher.Outbox, row model.Transaction) (bool, error) {
	exists, err := tx.TransactionExists(ctx, row.Hash)
	if err != nil || exists {
		return false, err
	}
	if err := tx.CreateTransaction(ctx, &row); err != nil {
		return false, err
	}
	if err := d.dispatcher.Process(ctx, tx, out, row); err != nil {
		return false, err
	}
	for _, delta := range balance.CacheDeltas(row, d.fees.CacheBurnAt(row.Height)) {
		if err := tx.IncrementAddressBalance(ctx, delta.Address, delta.Delta); err != nil {
			return false, err
		}
	}
	return true, nil
}

// masterNode resolves the master node address of validator, or nil when the validator is
// not a known master node. Negative lookups are cached too.
func (d *SyncDriver) masterNode(ctx context.Context, validator string) (*string, error) {
	if validator == "" {
		return nil, nil
	}

	item, err := d.masterNodes.Fetch(validator, d.masterNodeTTL, func() (interface{}, error) {
		n, err := d.store.GetMasterNode(ctx, validator)
		if errors.Is(err, ledgerdb.ErrNotFound) {
			return "", nil
		}
		if err != nil {
			return nil, err
		}
		return n.Address, nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve master node %s: %w", validator, err)
	}

	address, _ := item.Value().(string)
	if address == "" {
		return nil, nil
	}
	return &address, nil
}

// Backfill syncs every height in [start, end] in ascending order.
func (d *SyncDriver) Backfill(ctx context.Context, start, end uint64) error {
	if start > end {
		return fmt.Errorf("invalid range [%d, %d]", start, end)
	}
	for h := start; ; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Sync(ctx, h); err != nil {
			return err
		}
		if h == end {
			return nil
		}
	}
}

// SyncMissing syncs the heights in [start, end] that have no stored block and returns
// how many heights were attempted.
func (d *SyncDriver) SyncMissing(ctx context.Context, start, end uint64) (int, error) {
	missing, err := d.store.MissingBlockHeights(ctx, start, end)
	if err != nil {
		return 0, err
	}
	for i, h := range missing {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := d.Sync(ctx, h); err != nil {
			return i, err
		}
	}
	return len(missing), nil
}
