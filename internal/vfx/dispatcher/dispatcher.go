// Package dispatcher applies the side effects of a newly ingested transaction to the
// derived ledger entities.
//
// Dispatch is keyed on the transaction type and, inside each type, on the Function of its
// payload. A referenced entity that does not exist is logged and the sub-operation is
// skipped. A payload that cannot be interpreted is quarantined. Only store failures are
// returned to the caller, which is expected to roll back the enclosing unit.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

// Dispatcher routes transactions to their handlers.
type Dispatcher struct {
	contracts ContractSource
	shop      Shop
	notifier  Notifier
	icons     IconUploader
	metrics   Metrics
	engine    balance.Engine
	btcParams *chaincfg.Params
	logger    *zap.Logger
}

// New builds a Dispatcher for network.
func New(
	network model.Network,
	contracts ContractSource,
	shop Shop,
	notifier Notifier,
	icons IconUploader,
	metrics Metrics,
	logger *zap.Logger,
) (*Dispatcher, error) {
	if !network.Valid() {
		return nil, fmt.Errorf("unsupported network %q", network)
	}
	if contracts == nil {
		return nil, errors.New("contract source is required")
	}
	if shop == nil || notifier == nil || icons == nil {
		return nil, errors.New("shop, notifier and icon uploader are required")
	}
	if metrics == nil {
		return nil, errors.New("dispatcher metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		contracts: contracts,
		shop:      shop,
		notifier:  notifier,
		icons:     icons,
		metrics:   metrics,
		engine:    balance.NewEngine(network),
		btcParams: payload.BTCParams(network),
		logger:    logger.Named("dispatcher").With(zap.String("network", string(network))),
	}, nil
}

// Process applies the side effects of tx through store. tx must already be persisted.
// Collaborator calls are queued on out rather than made; see Publish.
func (d *Dispatcher) Process(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		d.metrics.ObserveDispatch(tx.Type.String(), err, started)
	}()

	if out == nil {
		return errors.New("outbox is required")
	}

	p, err := payload.Parse(tx.Type, tx.Data)
	if err != nil {
		if errors.Is(err, payload.ErrQuarantined) {
			return d.quarantine(ctx, store, tx, err)
		}
		return fmt.Errorf("parse payload of %s: %w", tx.Hash, err)
	}

	switch p := p.(type) {
	case nil:
		return nil
	case payload.Mint:
		return d.mint(ctx, store, out, tx, p)
	case payload.NftTransfer:
		return d.nftTransfer(ctx, store, tx, p)
	case payload.NftBurn:
		return d.nftBurn(ctx, store, tx, p)
	case payload.Sale:
		return d.sale(ctx, store, out, tx, p)
	case payload.Adnr:
		return d.adnr(ctx, store, tx, p)
	case payload.Shop:
		d.shopRegistration(out, tx, p)
		return nil
	case payload.Reserve:
		return d.reserve(ctx, store, out, tx, p)
	case payload.Token:
		return d.token(ctx, store, tx, p)
	case payload.Vbtc:
		return d.vbtc(ctx, store, tx, p)
	default:
		return fmt.Errorf("no handler for payload %T", p)
	}
}

func (d *Dispatcher) quarantine(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, reason error) error {
	d.logger.Warn("quarantining transaction",
		zap.String("hash", tx.Hash),
		zap.Stringer("type", tx.Type),
		zap.Error(reason))
	d.metrics.ObserveQuarantine(tx.Type.String())

	return store.Quarantine(ctx, &model.QuarantinedTransaction{
		TransactionHash: tx.Hash,
		Type:            tx.Type,
		Reason:          reason.Error(),
	})
}

// missing logs a referenced entity that does not exist. It reports whether err was a
// not-found error; any other error must be returned by the caller.
func (d *Dispatcher) missing(err error, msg string, fields ...zap.Field) bool {
	if !errors.Is(err, ledgerdb.ErrNotFound) {
		return false
	}
	d.logger.Warn(msg, fields...)
	return true
}

// external logs a failed collaborator call. Collaborators are best effort.
func (d *Dispatcher) external(err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}
	d.logger.Warn(msg, append(fields, zap.Error(err))...)
}
