package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of transaction kinds emitted by the node.
type TransactionType int

const (
	TxTransfer TransactionType = iota
	TxNode
	TxNftMint
	TxNftTransfer
	TxNftBurn
	TxNftSale
	TxAddress
	TxDstRegistration
	TxVoteTopic
	TxVote
	TxReserve
	TxSmartContractMint
	TxSmartContractTransfer
	TxSmartContractBurn
	TxFungibleTokenMint
	TxFungibleTokenTransfer
	TxFungibleTokenBurn
	TxTokenizedMint
	TxTokenizedTransfer
	TxTokenizedBurn
)

var transactionTypeNames = [...]string{
	"TX",
	"NODE",
	"NFT_MINT",
	"NFT_TX",
	"NFT_BURN",
	"NFT_SALE",
	"ADDRESS",
	"DST_REGISTRATION",
	"VOTE_TOPIC",
	"VOTE",
	"RESERVE",
	"SC_MINT",
	"SC_TX",
	"SC_BURN",
	"FTKN_MINT",
	"FTKN_TX",
	"FTKN_BURN",
	"TKNZ_MINT",
	"TKNZ_TX",
	"TKNZ_BURN",
}

// Valid reports whether t is a known kind.
func (t TransactionType) Valid() bool {
	return t >= TxTransfer && t <= TxTokenizedBurn
}

func (t TransactionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
	return transactionTypeNames[t]
}

// Transaction is an immutable ledger entry. VoidedFromCallback is the only field that
// may change after creation and it only ever moves from false to true.
type Transaction struct {
	Hash               string          `gorm:"primaryKey;size:255"`
	BlockHeight        uint64          `gorm:"index"`
	Height             uint64          `gorm:"index"`
	Type               TransactionType `gorm:"index"`
	ToAddress          string          `gorm:"size:255;index"`
	FromAddress        string          `gorm:"size:255;index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TotalFee           decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	Data               string          `gorm:"type:text"`
	Signature          string          `gorm:"type:text"`
	DateCrafted        time.Time
	NftIdentifier      *string    `gorm:"size:64"`
	UnlockTime         *time.Time `gorm:"index"`
	VoidedFromCallback bool       `gorm:"not null;default:false"`
}

// IsLockedAt reports whether the transaction still has a pending unlock time at now.
func (t Transaction) IsLockedAt(now time.Time) bool {
	return t.UnlockTime != nil && t.UnlockTime.After(now)
}
