package balance

import (
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// VbtcTransfer is a TransferCoin() movement joined with its carrying transaction.
type VbtcTransfer struct {
	Amount      decimal.Decimal
	ToAddress   string
	FromAddress string
}

// VbtcAddressBalances splits the global balance of token across addresses. The owner
// starts with the global balance and each transfer moves Amount from sender to recipient.
func VbtcAddressBalances(token model.VbtcToken, transfers []VbtcTransfer) map[string]decimal.Decimal {
	entries := map[string]decimal.Decimal{
		token.OwnerAddress: token.GlobalBalance,
	}
	for _, t := range transfers {
		entries[t.ToAddress] = entries[t.ToAddress].Add(t.Amount)
		entries[t.FromAddress] = entries[t.FromAddress].Sub(t.Amount)
	}
	return entries
}
