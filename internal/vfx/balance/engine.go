// Package balance derives balances from ledger rows. Nothing in here touches storage;
// callers load the rows and the functions aggregate them.
package balance

import (
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/policy"
	"github.com/shopspring/decimal"
)

// Balance is the available, locked and total balance of an address.
type Balance struct {
	Available decimal.Decimal
	Locked    decimal.Decimal
	Total     decimal.Decimal
}

// Ledger holds the rows touching one address: transactions where it is sender or
// recipient, callbacks where it is either side, and recoveries where it is either side.
type Ledger struct {
	Transactions []model.Transaction
	Callbacks    []model.Callback
	Recoveries   []model.Recovery
}

// Engine computes address balances under a chain policy.
type Engine struct {
	Fees       policy.FeeSchedule
	Classifier policy.AddressClassifier
}

// NewEngine returns an engine configured for network.
func NewEngine(network model.Network) Engine {
	return Engine{
		Fees:       policy.DefaultFeeSchedule(network),
		Classifier: policy.DefaultClassifier(),
	}
}

// AddressBalance computes the balance of address at now.
//
// Locked inbound and locked outbound amounts are added together rather than netted.
// Voided transactions still count toward the gross sums; their reversal enters through
// the callback rows. Sale payloads that cannot be parsed contribute nothing.
func (e Engine) AddressBalance(address string, now time.Time, l Ledger) Balance {
	var (
		inbound        = decimal.Zero
		outbound       = decimal.Zero
		inboundLocked  = decimal.Zero
		outboundLocked = decimal.Zero
		adnrBurn       = decimal.Zero
		sales          = decimal.Zero
		callbacks      = decimal.Zero
		recoveries     = decimal.Zero
	)

	for _, tx := range l.Transactions {
		if tx.Type == model.TxNftSale {
			if tx.ToAddress == address || tx.FromAddress == address {
				sales = sales.Add(saleDiff(address, tx.Data))
			}
			continue
		}

		locked := !tx.VoidedFromCallback && tx.IsLockedAt(now)

		if tx.ToAddress == address {
			inbound = inbound.Add(tx.TotalAmount)
			if locked {
				inboundLocked = inboundLocked.Add(tx.TotalAmount)
			}
			if tx.Type == model.TxAddress {
				adnrBurn = adnrBurn.Add(e.Fees.BurnAt(tx.Height))
			}
		}
		if tx.FromAddress == address {
			outbound = outbound.Add(tx.TotalAmount).Add(tx.TotalFee)
			if locked {
				outboundLocked = outboundLocked.Add(tx.TotalAmount)
			}
		}
	}

	for _, cb := range l.Callbacks {
		if cb.FromAddress == address {
			callbacks = callbacks.Add(cb.Amount)
		}
		if cb.ToAddress == address {
			callbacks = callbacks.Sub(cb.Amount)
		}
	}

	for _, r := range l.Recoveries {
		if r.NewAddress == address {
			recoveries = recoveries.Add(r.Amount)
		}
		if r.OriginalAddress == address {
			recoveries = recoveries.Sub(r.Amount)
		}
	}

	locked := inboundLocked.Add(outboundLocked)

	available := inbound.
		Sub(outbound).
		Sub(adnrBurn).
		Add(sales).
		Add(callbacks).
		Add(recoveries)
	if !e.Classifier.IsReserve(address) {
		available = available.Sub(locked)
	}

	return Balance{
		Available: available,
		Locked:    locked,
		Total:     available.Add(locked),
	}
}

func saleDiff(address, data string) decimal.Decimal {
	diff := decimal.Zero
	legs, err := payload.SaleSubTransactions(data)
	if err != nil {
		return diff
	}
	for _, leg := range legs {
		if leg.ToAddress == address {
			diff = diff.Add(leg.Amount)
		}
		if leg.FromAddress != nil && *leg.FromAddress == address {
			diff = diff.Sub(leg.Amount).Sub(leg.Fee)
		}
	}
	return diff
}
