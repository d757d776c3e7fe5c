package clickhouse

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/pkg/safe"
	"github.com/shopspring/decimal"
)

// SaleLeg is one settlement leg of a completed NFT sale.
type SaleLeg struct {
	ID              string
	TransactionHash string
	BlockHeight     uint64
	Index           uint32
	FromAddress     *string
	ToAddress       string
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	DateCrafted     time.Time
}

const insertSaleLegsQuery = `
INSERT INTO vfx_sale_legs (
	network,
	id,
	transaction_hash,
	block_height,
	leg_index,
	from_address,
	to_address,
	amount,
	fee,
	date_crafted
) VALUES`

// InsertSaleLegs stores sale settlement legs in ClickHouse.
func (r *Repository) InsertSaleLegs(ctx context.Context, legs []SaleLeg) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_sale_legs", err, start)
	}()

	if len(legs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSaleLegsQuery)
	if err != nil {
		return fmt.Errorf("prepare sale legs batch: %w", err)
	}

	for _, leg := range legs {
		if err = batch.Append(
			string(r.network),
			leg.ID,
			leg.TransactionHash,
			leg.BlockHeight,
			leg.Index,
			leg.FromAddress,
			leg.ToAddress,
			leg.Amount,
			leg.Fee,
			leg.DateCrafted.UTC(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append sale leg %s: %w", leg.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert sale legs: %w", err)
	}
	return nil
}

// SaleLegs extracts the settlement legs of a completed sale. Other transactions and
// sale payloads that are not completions yield nothing.
func SaleLegs(tx model.Transaction) ([]SaleLeg, error) {
	if tx.Type != model.TxNftSale {
		return nil, nil
	}
	subs, err := payload.SaleSubTransactions(tx.Data)
	if err != nil {
		return nil, fmt.Errorf("sale legs of %s: %w", tx.Hash, err)
	}

	legs := make([]SaleLeg, 0, len(subs))
	for i, sub := range subs {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("sale leg index of %s: %w", tx.Hash, err)
		}
		legs = append(legs, SaleLeg{
			ID:              saleLegID(tx.Hash, i),
			TransactionHash: tx.Hash,
			BlockHeight:     tx.BlockHeight,
			Index:           index,
			FromAddress:     sub.FromAddress,
			ToAddress:       sub.ToAddress,
			Amount:          sub.Amount,
			Fee:             sub.Fee,
			DateCrafted:     tx.DateCrafted,
		})
	}
	return legs, nil
}

func saleLegID(hash string, index int) string {
	return chainhash.DoubleHashH([]byte(hash + ":" + strconv.Itoa(index))).String()
}
