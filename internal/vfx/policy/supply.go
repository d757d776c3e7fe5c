package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// BlockReward is minted with every block.
	BlockReward = decimal.NewFromInt(32)
	// LifetimeSupply is the supply cap before burns.
	LifetimeSupply = decimal.NewFromInt(372000000)
	// MasterNodeStake is locked by every active master node.
	MasterNodeStake = decimal.NewFromInt(12000)
	// AdnrReportedBurn is the per-registration burn used by the circulation report.
	AdnrReportedBurn = decimal.NewFromInt(1)
)

// MasterNodeActiveWindow is how recently a node must have answered to count as active.
const MasterNodeActiveWindow = 15 * time.Minute
