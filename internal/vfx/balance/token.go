package balance

import (
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// TokenBalance returns the balance of address in token given the token's ledger entries.
func TokenBalance(token model.FungibleToken, address string, txs []model.FungibleTokenTx) decimal.Decimal {
	total := decimal.Zero
	if token.InitialSupply.IsPositive() && address == token.OriginalOwnerAddress {
		total = token.InitialSupply
	}

	for _, tx := range txs {
		if tx.TokenID != token.ID {
			continue
		}
		receiving := tx.ReceivingAddress != nil && *tx.ReceivingAddress == address
		sending := tx.SendingAddress != nil && *tx.SendingAddress == address

		switch tx.Type {
		case model.FungibleTokenMint:
			if receiving {
				total = total.Add(tx.Amount)
			}
		case model.FungibleTokenBurn:
			if receiving {
				total = total.Sub(tx.Amount)
			}
		case model.FungibleTokenTransfer:
			if receiving {
				total = total.Add(tx.Amount)
			}
			if sending {
				total = total.Sub(tx.Amount)
			}
		}
	}
	return total
}

// CirculatingSupply returns the supply of token. Fixed-supply tokens report their
// initial supply regardless of ledger entries.
func CirculatingSupply(token model.FungibleToken, txs []model.FungibleTokenTx) decimal.Decimal {
	if !token.CanMint && !token.CanBurn {
		return token.InitialSupply
	}

	supply := token.InitialSupply
	for _, tx := range txs {
		if tx.TokenID != token.ID {
			continue
		}
		switch tx.Type {
		case model.FungibleTokenMint:
			supply = supply.Add(tx.Amount)
		case model.FungibleTokenBurn:
			supply = supply.Sub(tx.Amount)
		}
	}
	return supply
}

// Holders returns every address that appears in the token ledger, plus the original owner.
func Holders(token model.FungibleToken, txs []model.FungibleTokenTx) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(a string) {
		if a == "" {
			return
		}
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	add(token.OriginalOwnerAddress)
	for _, tx := range txs {
		if tx.TokenID != token.ID {
			continue
		}
		if tx.ReceivingAddress != nil {
			add(*tx.ReceivingAddress)
		}
		if tx.SendingAddress != nil {
			add(*tx.SendingAddress)
		}
	}
	return out
}
