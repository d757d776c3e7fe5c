package balance

import (
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/policy"
	"github.com/shopspring/decimal"
)

// CacheDelta is an increment to the running balance cache of one address.
type CacheDelta struct {
	Address string
	Delta   decimal.Decimal
}

// CacheDeltas returns the cache increments produced by tx. adnrBurn is charged to the
// recipient of ADDRESS transactions; coinbase senders are never debited.
func CacheDeltas(tx model.Transaction, adnrBurn decimal.Decimal) []CacheDelta {
	in := tx.TotalAmount
	if tx.Type == model.TxAddress {
		in = in.Sub(adnrBurn)
	}

	deltas := []CacheDelta{{Address: tx.ToAddress, Delta: in}}
	if !policy.IsCoinbase(tx.FromAddress) {
		deltas = append(deltas, CacheDelta{
			Address: tx.FromAddress,
			Delta:   tx.TotalAmount.Add(tx.TotalFee).Neg(),
		})
	}
	return deltas
}

// Accumulate folds the cache increments of txs into acc without any ADNR burn, the way
// a full cache rebuild replays the ledger.
func Accumulate(acc map[string]decimal.Decimal, txs []model.Transaction) {
	for _, tx := range txs {
		for _, d := range CacheDeltas(tx, decimal.Zero) {
			acc[d.Address] = acc[d.Address].Add(d.Delta)
		}
	}
}
