package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MasterNode is a validator known to the network.
type MasterNode struct {
	Address       string `gorm:"primaryKey;size:255"`
	Name          *string
	IsActive      bool `gorm:"not null;default:true"`
	ConnectionID  string
	IPAddress     string `gorm:"size:64"`
	WalletVersion string `gorm:"size:64"`
	DateConnected time.Time
	City          *string
	Region        *string
	Country       *string
	TimeZone      *string
	Latitude      decimal.Decimal `gorm:"type:numeric(12,6);not null;default:0"`
	Longitude     decimal.Decimal `gorm:"type:numeric(12,6);not null;default:0"`
	BlockCount    int             `gorm:"not null;default:0"`
}
