package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/vfxledger/cmd/vfx/internal/bootstrap"
	"github.com/goodnatureofminers/vfxledger/internal/clock"
	"github.com/goodnatureofminers/vfxledger/internal/metrics"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/service/maintenance"
	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func addCommands(parser *flags.Parser) error {
	commands := []struct {
		name, short string
		data        any
	}{
		{"balance", "Show the balance of an address", &balanceCmd{}},
		{"token-balance", "Show a fungible token balance of an address", &tokenBalanceCmd{}},
		{"vbtc-balances", "Show per-address balances of a vBTC token", &vbtcBalancesCmd{}},
		{"missing", "List heights absent from the ledger", &missingCmd{}},
		{"resync-balances", "Rebuild the address balance cache", &resyncBalancesCmd{}},
		{"sync-adnrs", "Rebuild domain registrations from ADDRESS transactions", &syncAdnrsCmd{}},
		{"circulation", "Recompute the circulation report", &circulationCmd{}},
		{"sync-masternodes", "Refresh master nodes from the node", &syncMasterNodesCmd{}},
		{"recount-masternode-blocks", "Recount blocks validated per master node", &recountMasterNodeBlocksCmd{}},
		{"archive-gaps", "List heights absent from the ClickHouse archive", &archiveGapsCmd{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			return fmt.Errorf("add command %s: %w", c.name, err)
		}
	}
	return nil
}

func newMaintenance(stack *bootstrap.Stack, logger *zap.Logger) (*maintenance.Service, error) {
	return maintenance.NewService(stack.Store, stack.Node, stack.Dispatcher, metrics.NewMaintenance(), logger)
}

type balanceCmd struct {
	command
	Args struct {
		Address string `positional-arg-name:"address" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

type balanceResult struct {
	Address   string          `json:"address"`
	Available decimal.Decimal `json:"available"`
	Locked    decimal.Decimal `json:"locked"`
	Total     decimal.Decimal `json:"total"`
	Cached    decimal.Decimal `json:"cached"`
}

func (c *balanceCmd) run(ctx context.Context, stack *bootstrap.Stack, _ *zap.Logger) (any, error) {
	b, err := stack.Store.Balance(ctx, balance.NewEngine(stack.Network), c.Args.Address, clock.UTCNow())
	if err != nil {
		return nil, err
	}

	cached := decimal.Zero
	addr, err := stack.Store.GetAddress(ctx, c.Args.Address)
	switch {
	case err == nil:
		cached = addr.Balance
	case !errors.Is(err, ledgerdb.ErrNotFound):
		return nil, err
	}

	return balanceResult{
		Address:   c.Args.Address,
		Available: b.Available,
		Locked:    b.Locked,
		Total:     b.Total,
		Cached:    cached,
	}, nil
}

type tokenBalanceCmd struct {
	command
	Args struct {
		Identifier string `positional-arg-name:"sc-identifier" required:"yes"`
		Address    string `positional-arg-name:"address" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

type tokenBalanceResult struct {
	Identifier  string          `json:"sc_identifier"`
	Ticker      string          `json:"ticker"`
	Address     string          `json:"address"`
	Balance     decimal.Decimal `json:"balance"`
	Circulating decimal.Decimal `json:"circulating"`
}

func (c *tokenBalanceCmd) run(ctx context.Context, stack *bootstrap.Stack, _ *zap.Logger) (any, error) {
	token, err := stack.Store.GetFungibleToken(ctx, c.Args.Identifier)
	if err != nil {
		return nil, fmt.Errorf("get token %s: %w", c.Args.Identifier, err)
	}
	txs, err := stack.Store.FungibleTokenTxs(ctx, token.ID)
	if err != nil {
		return nil, err
	}

	return tokenBalanceResult{
		Identifier:  token.SCIdentifier,
		Ticker:      token.Ticker,
		Address:     c.Args.Address,
		Balance:     balance.TokenBalance(*token, c.Args.Address, txs),
		Circulating: balance.CirculatingSupply(*token, txs),
	}, nil
}

type vbtcBalancesCmd struct {
	command
	Args struct {
		Identifier string `positional-arg-name:"sc-identifier" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *vbtcBalancesCmd) run(ctx context.Context, stack *bootstrap.Stack, _ *zap.Logger) (any, error) {
	token, err := stack.Store.GetVbtcToken(ctx, c.Args.Identifier)
	if err != nil {
		return nil, fmt.Errorf("get vbtc token %s: %w", c.Args.Identifier, err)
	}
	transfers, err := stack.Store.VbtcTransfers(ctx, token.ID)
	if err != nil {
		return nil, err
	}
	return balance.VbtcAddressBalances(*token, transfers), nil
}

type missingCmd struct {
	command
	Start uint64  `long:"start" description:"first height to check" default:"0"`
	End   *uint64 `long:"end" description:"last height to check, defaults to the local tip"`
}

func (c *missingCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	missing, err := svc.ValidateBlocks(ctx, c.Start, c.End)
	if err != nil {
		return nil, err
	}
	if missing == nil {
		missing = []uint64{}
	}
	return missing, nil
}

type resyncBalancesCmd struct {
	command
}

func (c *resyncBalancesCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	n, err := svc.ResyncBalances(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]int{"addresses": n}, nil
}

type syncAdnrsCmd struct {
	command
}

func (c *syncAdnrsCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	n, err := svc.SyncAdnrs(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]int{"replayed": n}, nil
}

type circulationCmd struct {
	command
}

func (c *circulationCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	return svc.SyncCirculation(ctx)
}

type syncMasterNodesCmd struct {
	command
	AttachBlocks bool `long:"attach-blocks" description:"also attach blocks without a master node to their validator"`
}

func (c *syncMasterNodesCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	return svc.SyncMasterNodes(ctx, c.AttachBlocks)
}

type recountMasterNodeBlocksCmd struct {
	command
}

func (c *recountMasterNodeBlocksCmd) run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error) {
	svc, err := newMaintenance(stack, logger)
	if err != nil {
		return nil, err
	}
	return svc.RecountMasterNodeBlocks(ctx)
}

type archiveGapsCmd struct {
	command
	Limit uint64 `long:"limit" description:"maximum heights to list" default:"1000"`
}

func (c *archiveGapsCmd) run(ctx context.Context, stack *bootstrap.Stack, _ *zap.Logger) (any, error) {
	if stack.ArchiveRepo == nil {
		return nil, errors.New("clickhouse dsn is required")
	}
	height, ok, err := stack.ArchiveRepo.MaxBlockHeight(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []uint64{}, nil
	}
	missing, err := stack.ArchiveRepo.MissingBlockHeights(ctx, height, c.Limit)
	if err != nil {
		return nil, err
	}
	if missing == nil {
		missing = []uint64{}
	}
	return missing, nil
}
