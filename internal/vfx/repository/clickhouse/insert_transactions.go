package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

const insertTransactionsQuery = `
INSERT INTO vfx_transactions (
	network,
	hash,
	block_height,
	height,
	type,
	from_address,
	to_address,
	total_amount,
	total_fee,
	data,
	nft_identifier,
	unlock_time,
	date_crafted
) VALUES`

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(transactionRow(r.network, tx)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func transactionRow(network model.Network, tx model.Transaction) []any {
	var unlock *time.Time
	if tx.UnlockTime != nil {
		t := tx.UnlockTime.UTC()
		unlock = &t
	}
	return []any{
		string(network),
		tx.Hash,
		tx.BlockHeight,
		tx.Height,
		tx.Type.String(),
		tx.FromAddress,
		tx.ToAddress,
		tx.TotalAmount,
		tx.TotalFee,
		tx.Data,
		tx.NftIdentifier,
		unlock,
		tx.DateCrafted.UTC(),
	}
}
