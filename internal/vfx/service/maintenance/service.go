// Package maintenance holds the reconciliation jobs run by operators against the
// ledger store: cache rebuilds, ADNR replay, master node refresh and reports.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/clock"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/policy"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const replayBatchSize = 5000

// Service runs maintenance jobs.
type Service struct {
	store   *ledgerdb.Store
	nodes   MasterNodeSource
	adnrs   AdnrReplayer
	metrics Metrics
	now     func() time.Time
	logger  *zap.Logger
}

// MasterNodeSync summarizes a master node refresh.
type MasterNodeSync struct {
	Seen           int
	Active         int
	AttachedBlocks int64
}

func NewService(
	store *ledgerdb.Store,
	nodes MasterNodeSource,
	adnrs AdnrReplayer,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if nodes == nil || adnrs == nil {
		return nil, errors.New("master node source and adnr replayer are required")
	}
	if metrics == nil {
		return nil, errors.New("maintenance metrics is required")
	}

	return &Service{
		store:   store,
		nodes:   nodes,
		adnrs:   adnrs,
		metrics: metrics,
		now:     clock.UTCNow,
		logger:  logger.Named("maintenance"),
	}, nil
}

// ResyncBalances rebuilds the address cache from every stored transaction and returns
// the number of cached addresses. No ADNR burn is applied.
func (s *Service) ResyncBalances(ctx context.Context) (addresses int, err error) {
	defer s.observe("resync_balances", time.Now(), &err)

	err = s.store.WithinTx(ctx, func(tx *ledgerdb.Store) error {
		if err := tx.DeleteAllAddresses(ctx); err != nil {
			return err
		}

		acc := make(map[string]decimal.Decimal)
		replayed := 0
		err := tx.AllTransactions(ctx, replayBatchSize, func(txs []model.Transaction) error {
			balance.Accumulate(acc, txs)
			replayed += len(txs)
			s.logger.Debug("replayed transactions", zap.Int("total", replayed))
			return ctx.Err()
		})
		if err != nil {
			return err
		}

		addresses = len(acc)
		return tx.SaveAddressBalances(ctx, acc)
	})
	if err != nil {
		return 0, fmt.Errorf("resync balances: %w", err)
	}

	s.logger.Info("address cache rebuilt", zap.Int("addresses", addresses))
	return addresses, nil
}

// SyncAdnrs rebuilds every ADNR from the ADDRESS transactions.
func (s *Service) SyncAdnrs(ctx context.Context) (replayed int, err error) {
	defer s.observe("sync_adnrs", time.Now(), &err)

	replayed, err = s.adnrs.ReplayAdnrs(ctx, s.store)
	if err != nil {
		return 0, fmt.Errorf("replay adnrs: %w", err)
	}
	s.logger.Info("adnrs replayed", zap.Int("transactions", replayed))
	return replayed, nil
}

// SyncCirculation recomputes and stores the circulation report.
func (s *Service) SyncCirculation(ctx context.Context) (c *model.Circulation, err error) {
	defer s.observe("sync_circulation", time.Now(), &err)

	totals, err := s.store.TransactionTotals(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := s.store.CountBlocks(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.store.CountMasterNodes(ctx, true)
	if err != nil {
		return nil, err
	}
	total, err := s.store.CountMasterNodes(ctx, false)
	if err != nil {
		return nil, err
	}
	addresses, err := s.store.CountAddresses(ctx)
	if err != nil {
		return nil, err
	}

	c = circulation(totals, blocks, active)
	c.TotalMasterNodes = total
	c.TotalAddresses = addresses
	c.UpdatedAt = s.now().UTC()

	if err = s.store.SaveCirculation(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("circulation updated",
		zap.String("balance", c.Balance.String()),
		zap.String("lifetime_supply", c.LifetimeSupply.String()),
		zap.Int64("active_master_nodes", active))
	return c, nil
}

func circulation(t ledgerdb.TransactionTotals, blocks, activeNodes int64) *model.Circulation {
	adnrBurned := policy.AdnrReportedBurn.Mul(decimal.NewFromInt(t.AdnrCount))
	burned := t.FeeSum.Add(adnrBurned).Add(t.ShopAmountSum)

	return &model.Circulation{
		Balance:           t.GenesisAmount.Add(policy.BlockReward.Mul(decimal.NewFromInt(blocks))).Sub(burned),
		LifetimeSupply:    policy.LifetimeSupply.Sub(burned),
		FeesBurnedSum:     burned,
		FeesBurned:        t.Count,
		TotalStaked:       policy.MasterNodeStake.Mul(decimal.NewFromInt(activeNodes)),
		ActiveMasterNodes: activeNodes,
		TotalTransactions: t.Count,
	}
}

// SyncMasterNodes refreshes master nodes from the node's view. Nodes that answered within
// the active window are upserted as active; every other stored node is deactivated.
// With attachBlocks, blocks without a master node are linked by validator address.
func (s *Service) SyncMasterNodes(ctx context.Context, attachBlocks bool) (res MasterNodeSync, err error) {
	defer s.observe("sync_master_nodes", time.Now(), &err)

	sent, err := s.nodes.GetMasterNodes(ctx)
	if err != nil {
		return res, fmt.Errorf("get master nodes: %w", err)
	}
	res.Seen = len(sent)

	now := s.now().UTC()
	active := make([]model.MasterNode, 0, len(sent))
	for _, n := range sent {
		if !s.answeredRecently(n, now) {
			continue
		}
		connected, err := parseNodeTime(n.ConnectDate)
		if err != nil {
			s.logger.Warn("unparsable connect date", zap.String("address", n.Address), zap.Error(err))
		}
		active = append(active, model.MasterNode{
			Address:       n.Address,
			Name:          n.UniqueName,
			IsActive:      true,
			IPAddress:     n.IPAddress,
			WalletVersion: n.WalletVersion,
			DateConnected: connected,
			Latitude:      decimal.Zero,
			Longitude:     decimal.Zero,
		})
	}
	res.Active = len(active)

	addresses := make([]string, 0, len(active))
	for _, n := range active {
		addresses = append(addresses, n.Address)
	}

	err = s.store.WithinTx(ctx, func(tx *ledgerdb.Store) error {
		if err := tx.DeactivateMasterNodesExcept(ctx, addresses); err != nil {
			return err
		}
		for i := range active {
			if err := tx.UpsertMasterNode(ctx, &active[i]); err != nil {
				return err
			}
		}
		if !attachBlocks {
			return nil
		}
		attached, err := tx.AttachBlocksToMasterNodes(ctx)
		res.AttachedBlocks = attached
		return err
	})
	if err != nil {
		return MasterNodeSync{}, fmt.Errorf("store master nodes: %w", err)
	}

	s.logger.Info("master nodes synchronized",
		zap.Int("seen", res.Seen),
		zap.Int("active", res.Active),
		zap.Int64("attached_blocks", res.AttachedBlocks))
	return res, nil
}

func (s *Service) answeredRecently(n node.MasterNode, now time.Time) bool {
	if n.LastAnswerSendDate == "" {
		return false
	}
	last, err := parseNodeTime(n.LastAnswerSendDate)
	if err != nil {
		s.logger.Warn("unparsable last answer date",
			zap.String("address", n.Address),
			zap.String("value", n.LastAnswerSendDate),
			zap.Error(err))
		return false
	}
	return now.Sub(last) <= policy.MasterNodeActiveWindow
}

// parseNodeTime reads the node's timestamps, which are UTC with or without a trailing Z
// and with up to seven fractional digits.
func parseNodeTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", strings.TrimSuffix(v, "Z")); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// RecountMasterNodeBlocks recomputes every block count from the block table.
func (s *Service) RecountMasterNodeBlocks(ctx context.Context) (counts map[string]int, err error) {
	defer s.observe("recount_master_node_blocks", time.Now(), &err)

	err = s.store.WithinTx(ctx, func(tx *ledgerdb.Store) error {
		if err := tx.ResetMasterNodeBlockCounts(ctx); err != nil {
			return err
		}
		var err error
		if counts, err = tx.MasterNodeBlockCounts(ctx); err != nil {
			return err
		}
		for address, count := range counts {
			if err := tx.SetMasterNodeBlockCount(ctx, address, count); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recount master node blocks: %w", err)
	}
	return counts, nil
}

// ValidateBlocks returns the heights in [start, end] that have no stored block.
// A nil end means the local maximum height.
func (s *Service) ValidateBlocks(ctx context.Context, start uint64, end *uint64) (missing []uint64, err error) {
	defer s.observe("validate_blocks", time.Now(), &err)

	last := uint64(0)
	if end != nil {
		last = *end
	} else {
		height, ok, err := s.store.MaxBlockHeight(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		last = height
	}
	if start > last {
		return nil, fmt.Errorf("invalid range [%d, %d]", start, last)
	}

	missing, err = s.store.MissingBlockHeights(ctx, start, last)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		s.logger.Warn("blocks missing",
			zap.Uint64("start", start),
			zap.Uint64("end", last),
			zap.Int("count", len(missing)))
	}
	return missing, nil
}

func (s *Service) observe(job string, started time.Time, err *error) {
	s.metrics.ObserveJob(job, *err, started)
}
