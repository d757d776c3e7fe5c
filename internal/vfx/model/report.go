package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CirculationID is the primary key of the single circulation row.
const CirculationID = 1

// Circulation is the supply report produced by the maintenance job.
type Circulation struct {
	ID                uint            `gorm:"primaryKey;autoIncrement:false"`
	Balance           decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	LifetimeSupply    decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	FeesBurnedSum     decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	FeesBurned        int64
	TotalStaked       decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	ActiveMasterNodes int64
	TotalMasterNodes  int64
	TotalAddresses    int64
	TotalTransactions int64
	UpdatedAt         time.Time
}

// MintFailure marks a mint whose contract could not be resolved by the node.
type MintFailure struct {
	TransactionHash string `gorm:"primaryKey;size:255"`
	ContractUID     string `gorm:"size:64;index"`
	Reason          string `gorm:"type:text"`
	CreatedAt       time.Time
}

// QuarantinedTransaction holds a transaction whose payload could not be interpreted.
type QuarantinedTransaction struct {
	TransactionHash string          `gorm:"primaryKey;size:255"`
	Type            TransactionType `gorm:"index"`
	Reason          string          `gorm:"type:text"`
	CreatedAt       time.Time
}

// All lists every persisted entity, in migration order.
func All() []any {
	return []any{
		&Block{},
		&Transaction{},
		&Address{},
		&Callback{},
		&Recovery{},
		&RecoveryOutstanding{},
		&Nft{},
		&NftHistory{},
		&FungibleToken{},
		&FungibleTokenTx{},
		&TokenVoteTopic{},
		&TokenVoteTopicVote{},
		&VbtcToken{},
		&VbtcTokenAmountTransfer{},
		&Adnr{},
		&AdnrTransfer{},
		&MasterNode{},
		&Circulation{},
		&MintFailure{},
		&QuarantinedTransaction{},
	}
}
