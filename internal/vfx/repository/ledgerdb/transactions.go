package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionExists reports whether a transaction with hash has been stored.
func (s *Store) TransactionExists(ctx context.Context, hash string) (exists bool, err error) {
	defer s.observe("transaction_exists", time.Now(), &err)

	var count int64
	if err = s.conn(ctx).Model(&model.Transaction{}).Where("hash = ?", hash).Count(&count).Error; err != nil {
		return false, fmt.Errorf("query transaction exists: %w", err)
	}
	return count > 0, nil
}

// CreateTransaction inserts tx. A duplicate hash is an error.
func (s *Store) CreateTransaction(ctx context.Context, tx *model.Transaction) (err error) {
	defer s.observe("create_transaction", time.Now(), &err)

	if err = s.conn(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("insert transaction %s: %w", tx.Hash, err)
	}
	return nil
}

// GetTransaction loads a transaction by hash.
func (s *Store) GetTransaction(ctx context.Context, hash string) (tx *model.Transaction, err error) {
	defer s.observe("get_transaction", time.Now(), &err)

	tx = &model.Transaction{}
	if err = s.conn(ctx).Where("hash = ?", hash).Take(tx).Error; err != nil {
		return nil, fmt.Errorf("load transaction %s: %w", hash, notFound(err))
	}
	return tx, nil
}

// VoidTransaction flips voided_from_callback from false to true. It reports false when
// the transaction was already voided.
func (s *Store) VoidTransaction(ctx context.Context, hash string) (voided bool, err error) {
	defer s.observe("void_transaction", time.Now(), &err)

	res := s.conn(ctx).Model(&model.Transaction{}).
		Where("hash = ? AND voided_from_callback = ?", hash, false).
		Update("voided_from_callback", true)
	if res.Error != nil {
		return false, fmt.Errorf("void transaction %s: %w", hash, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// SetTransactionNft links a mint transaction to the nft it created.
func (s *Store) SetTransactionNft(ctx context.Context, hash, identifier string) (err error) {
	defer s.observe("set_transaction_nft", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.Transaction{}).Where("hash = ?", hash).
		Update("nft_identifier", identifier).Error; err != nil {
		return fmt.Errorf("link transaction %s to nft: %w", hash, err)
	}
	return nil
}

// TransactionsForAddress returns every transaction sent or received by address.
func (s *Store) TransactionsForAddress(ctx context.Context, address string) (txs []model.Transaction, err error) {
	defer s.observe("transactions_for_address", time.Now(), &err)

	if err = s.conn(ctx).
		Where("to_address = ? OR from_address = ?", address, address).
		Order("height, hash").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("query transactions for %s: %w", address, err)
	}
	return txs, nil
}

// OutstandingLockedFrom returns the non-voided transactions sent by address that are
// still locked at after.
func (s *Store) OutstandingLockedFrom(ctx context.Context, address string, after time.Time) (txs []model.Transaction, err error) {
	defer s.observe("outstanding_locked_from", time.Now(), &err)

	var candidates []model.Transaction
	if err = s.conn(ctx).
		Where("from_address = ? AND voided_from_callback = ? AND unlock_time IS NOT NULL", address, false).
		Order("height, hash").
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("query locked transactions from %s: %w", address, err)
	}

	// unlock_time is compared here because sqlite stores it as text
	for _, tx := range candidates {
		if tx.IsLockedAt(after) {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// TransactionsByType returns transactions of type t ordered by height.
func (s *Store) TransactionsByType(ctx context.Context, t model.TransactionType) (txs []model.Transaction, err error) {
	defer s.observe("transactions_by_type", time.Now(), &err)

	if err = s.conn(ctx).Where("type = ?", t).Order("height, hash").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("query %s transactions: %w", t, err)
	}
	return txs, nil
}

// AllTransactions walks every transaction in primary key order, batch rows at a time.
func (s *Store) AllTransactions(ctx context.Context, batch int, fn func([]model.Transaction) error) (err error) {
	defer s.observe("all_transactions", time.Now(), &err)

	if batch <= 0 {
		batch = defaultBatchSize
	}

	var rows []model.Transaction
	res := s.conn(ctx).FindInBatches(&rows, batch, func(_ *gorm.DB, _ int) error {
		return fn(rows)
	})
	if res.Error != nil {
		return fmt.Errorf("iterate transactions: %w", res.Error)
	}
	return nil
}

// TransactionTotals holds the ledger-wide figures of the circulation report.
type TransactionTotals struct {
	Count         int64
	GenesisAmount decimal.Decimal
	FeeSum        decimal.Decimal
	AdnrCount     int64
	ShopAmountSum decimal.Decimal
}

// TransactionTotals aggregates every stored transaction. Sums are taken in Go so that
// numeric columns behave the same on sqlite and postgres.
func (s *Store) TransactionTotals(ctx context.Context) (totals TransactionTotals, err error) {
	defer s.observe("transaction_totals", time.Now(), &err)

	err = s.AllTransactions(ctx, defaultBatchSize, func(txs []model.Transaction) error {
		for _, tx := range txs {
			totals.Count++
			totals.FeeSum = totals.FeeSum.Add(tx.TotalFee)
			if tx.Height == 0 {
				totals.GenesisAmount = totals.GenesisAmount.Add(tx.TotalAmount)
			}
			switch tx.Type {
			case model.TxAddress:
				totals.AdnrCount++
			case model.TxDstRegistration:
				totals.ShopAmountSum = totals.ShopAmountSum.Add(tx.TotalAmount)
			}
		}
		return nil
	})
	if err != nil {
		return TransactionTotals{}, err
	}
	return totals, nil
}
