package model

// Adnr is a registered domain name. BTC-linked domains also carry a BTC address.
type Adnr struct {
	ID                    uint    `gorm:"primaryKey"`
	Address               string  `gorm:"size:255;index"`
	Domain                string  `gorm:"size:255;index"`
	IsBTC                 bool    `gorm:"not null;default:false"`
	CreateTransactionHash string  `gorm:"size:255"`
	DeleteTransactionHash *string `gorm:"size:255"`
	BTCAddress            *string `gorm:"size:90;index"`
}

// AdnrTransfer records a transfer transaction applied to a domain.
type AdnrTransfer struct {
	AdnrID          uint   `gorm:"primaryKey;autoIncrement:false"`
	TransactionHash string `gorm:"primaryKey;size:255"`
}
