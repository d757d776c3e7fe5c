package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Block is an ingested block. Rows are never updated apart from the master node association.
type Block struct {
	Height             uint64          `gorm:"primaryKey;autoIncrement:false"`
	MasterNodeAddress  *string         `gorm:"size:255;index"`
	Hash               string          `gorm:"size:255;index"`
	PreviousHash       string          `gorm:"size:255"`
	ValidatorAddress   string          `gorm:"size:255;index"`
	ValidatorSignature string          `gorm:"size:255"`
	ValidatorAnswer    string          `gorm:"size:255"`
	ChainRefID         string          `gorm:"size:255"`
	MerkleRoot         string          `gorm:"size:255"`
	StateRoot          string          `gorm:"size:255"`
	TotalReward        decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TotalValidators    int
	Version            int
	Size               int
	CraftTime          int64
	DateCrafted        time.Time
}
