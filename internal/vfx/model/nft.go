package model

import "time"

// NftHistoryKind classifies a transaction attached to an NFT.
type NftHistoryKind string

var (
	NftHistoryTransfer NftHistoryKind = "transfer"
	NftHistorySale     NftHistoryKind = "sale"
	NftHistoryMisc     NftHistoryKind = "misc"
)

// Nft is a minted smart contract. OwnerAddress is the only field that changes often.
type Nft struct {
	Identifier          string `gorm:"primaryKey;size:64"`
	Name                string `gorm:"size:255"`
	Description         string `gorm:"type:text"`
	MinterAddress       string `gorm:"size:255;index"`
	OwnerAddress        string `gorm:"size:255;index"`
	MinterName          string `gorm:"size:255"`
	PrimaryAssetName    string `gorm:"size:255"`
	PrimaryAssetSize    int64
	Data                string  `gorm:"type:text"`
	SmartContractData   string  `gorm:"type:text"`
	MintTransactionHash *string `gorm:"size:255"`
	BurnTransactionHash *string `gorm:"size:255"`
	IsPublished         bool    `gorm:"not null;default:true"`
	MintedAt            time.Time
	UpdatedAt           time.Time
	OnChain             bool `gorm:"not null;default:true"`
	IsFungibleToken     bool `gorm:"not null;default:false"`
	IsVbtc              bool `gorm:"not null;default:false"`
}

// IsBurned reports whether a burn transaction has been recorded.
func (n Nft) IsBurned() bool {
	return n.BurnTransactionHash != nil
}

// NftHistory attaches a transfer, sale or evolve transaction to an NFT.
type NftHistory struct {
	NftIdentifier   string         `gorm:"primaryKey;size:64"`
	TransactionHash string         `gorm:"primaryKey;size:255"`
	Kind            NftHistoryKind `gorm:"size:16;index"`
}
