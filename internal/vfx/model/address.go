package model

import "github.com/shopspring/decimal"

// Address caches a running balance for one address. The cached value is advisory;
// the balance engine recomputes the authoritative figure from the ledger.
type Address struct {
	Address string          `gorm:"primaryKey;size:255"`
	Balance decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	AdnrID  *uint           `gorm:"index"`
}

// Callback reverses OriginalTransactionHash. Amount flows back from ToAddress to FromAddress.
type Callback struct {
	ID                      uint            `gorm:"primaryKey"`
	ToAddress               string          `gorm:"size:255;index"`
	FromAddress             string          `gorm:"size:255;index"`
	Amount                  decimal.Decimal `gorm:"type:numeric(32,16);not null"`
	TransactionHash         string          `gorm:"size:255;index"`
	OriginalTransactionHash string          `gorm:"size:255;uniqueIndex"`
	FromRecovery            bool            `gorm:"not null;default:false"`
}

// Recovery moves the balance of OriginalAddress to NewAddress.
type Recovery struct {
	ID              uint            `gorm:"primaryKey"`
	OriginalAddress string          `gorm:"size:255;index"`
	NewAddress      string          `gorm:"size:255;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TransactionHash string          `gorm:"size:255;uniqueIndex"`
	Outstanding     []RecoveryOutstanding
}

// RecoveryOutstanding links a recovery to a still-locked transaction it redirected.
type RecoveryOutstanding struct {
	RecoveryID      uint   `gorm:"primaryKey;autoIncrement:false"`
	TransactionHash string `gorm:"primaryKey;size:255"`
}
