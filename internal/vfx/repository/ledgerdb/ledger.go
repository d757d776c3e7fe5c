package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

// CreateCallback stores a reversal record.
func (s *Store) CreateCallback(ctx context.Context, cb *model.Callback) (err error) {
	defer s.observe("create_callback", time.Now(), &err)

	if err = s.conn(ctx).Create(cb).Error; err != nil {
		return fmt.Errorf("insert callback for %s: %w", cb.OriginalTransactionHash, err)
	}
	return nil
}

// CallbacksFor returns the callbacks where address is on either side.
func (s *Store) CallbacksFor(ctx context.Context, address string) (cbs []model.Callback, err error) {
	defer s.observe("callbacks_for", time.Now(), &err)

	if err = s.conn(ctx).Where("to_address = ? OR from_address = ?", address, address).
		Order("id").Find(&cbs).Error; err != nil {
		return nil, fmt.Errorf("query callbacks for %s: %w", address, err)
	}
	return cbs, nil
}

// CreateRecovery stores a recovery together with its outstanding transaction set.
func (s *Store) CreateRecovery(ctx context.Context, r *model.Recovery) (err error) {
	defer s.observe("create_recovery", time.Now(), &err)

	if err = s.conn(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("insert recovery %s: %w", r.TransactionHash, err)
	}
	return nil
}

// RecoveriesFor returns the recoveries where address is the original or the new address.
func (s *Store) RecoveriesFor(ctx context.Context, address string) (rs []model.Recovery, err error) {
	defer s.observe("recoveries_for", time.Now(), &err)

	if err = s.conn(ctx).Preload("Outstanding").
		Where("original_address = ? OR new_address = ?", address, address).
		Order("id").Find(&rs).Error; err != nil {
		return nil, fmt.Errorf("query recoveries for %s: %w", address, err)
	}
	return rs, nil
}

// LoadLedger gathers every row the balance engine needs for address.
func (s *Store) LoadLedger(ctx context.Context, address string) (balance.Ledger, error) {
	txs, err := s.TransactionsForAddress(ctx, address)
	if err != nil {
		return balance.Ledger{}, err
	}
	cbs, err := s.CallbacksFor(ctx, address)
	if err != nil {
		return balance.Ledger{}, err
	}
	rs, err := s.RecoveriesFor(ctx, address)
	if err != nil {
		return balance.Ledger{}, err
	}
	return balance.Ledger{Transactions: txs, Callbacks: cbs, Recoveries: rs}, nil
}

// Balance computes the authoritative balance of address as of now.
func (s *Store) Balance(ctx context.Context, engine balance.Engine, address string, now time.Time) (balance.Balance, error) {
	l, err := s.LoadLedger(ctx, address)
	if err != nil {
		return balance.Balance{}, err
	}
	return engine.AddressBalance(address, now, l), nil
}
