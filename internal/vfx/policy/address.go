package policy

import "strings"

const (
	// ReservePrefix identifies reserve addresses, which are exempt from lock accounting.
	ReservePrefix = "xRBX"

	CoinbaseFees   = "Coinbase_TrxFees"
	CoinbaseReward = "Coinbase_BlkRwd"
)

// AddressClassifier decides which addresses belong to the reserve class.
type AddressClassifier struct {
	ReservePrefix string
}

// DefaultClassifier returns the classifier used on every network.
func DefaultClassifier() AddressClassifier {
	return AddressClassifier{ReservePrefix: ReservePrefix}
}

// IsReserve reports whether address is a reserve address.
func (c AddressClassifier) IsReserve(address string) bool {
	return c.ReservePrefix != "" && strings.HasPrefix(address, c.ReservePrefix)
}

// IsCoinbase reports whether address is one of the synthetic coinbase senders.
func IsCoinbase(address string) bool {
	return address == CoinbaseFees || address == CoinbaseReward
}
