// Package policy holds chain parameters that changed over the life of the network.
package policy

import (
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// AdnrFeeSwitchHeight is the last height charged at the legacy ADNR registration fee.
const AdnrFeeSwitchHeight uint64 = 832000

// FeeTier charges Burn for every ADNR registration received at a height up to MaxHeight.
// A zero MaxHeight marks the open-ended final tier.
type FeeTier struct {
	MaxHeight uint64
	Burn      decimal.Decimal
}

// FeeSchedule is the ADNR registration burn keyed by height. Tiers are ordered by MaxHeight.
type FeeSchedule struct {
	Tiers []FeeTier
	// CacheTiers overrides Tiers for the running balance cache kept during sync.
	// Testnet historically charged the high fee there regardless of height.
	CacheTiers []FeeTier
}

// DefaultFeeSchedule returns the schedule deployed on network.
func DefaultFeeSchedule(network model.Network) FeeSchedule {
	legacy := decimal.NewFromInt(1)
	current := decimal.NewFromInt(5)

	if network == model.Testnet {
		return FeeSchedule{
			Tiers: []FeeTier{
				{MaxHeight: AdnrFeeSwitchHeight, Burn: decimal.Zero},
				{Burn: current},
			},
			CacheTiers: []FeeTier{
				{Burn: current},
			},
		}
	}

	return FeeSchedule{
		Tiers: []FeeTier{
			{MaxHeight: AdnrFeeSwitchHeight, Burn: legacy},
			{Burn: current},
		},
	}
}

// BurnAt returns the fee burned for one ADNR registration received at height.
func (s FeeSchedule) BurnAt(height uint64) decimal.Decimal {
	return burnAt(s.Tiers, height)
}

// CacheBurnAt returns the fee applied to the running balance cache at height.
func (s FeeSchedule) CacheBurnAt(height uint64) decimal.Decimal {
	if len(s.CacheTiers) == 0 {
		return burnAt(s.Tiers, height)
	}
	return burnAt(s.CacheTiers, height)
}

func burnAt(tiers []FeeTier, height uint64) decimal.Decimal {
	for _, tier := range tiers {
		if tier.MaxHeight == 0 || height <= tier.MaxHeight {
			return tier.Burn
		}
	}
	return decimal.Zero
}
