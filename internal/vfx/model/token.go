package model

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// FungibleTokenTxType is the kind of a fungible token ledger entry.
type FungibleTokenTxType string

var (
	FungibleTokenMint     FungibleTokenTxType = "mint"
	FungibleTokenBurn     FungibleTokenTxType = "burn"
	FungibleTokenTransfer FungibleTokenTxType = "transfer"
)

// StringList is a string slice stored as a JSON array column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.New("string list: unsupported source type")
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// FungibleToken is deployed by a TokenDeploy() mint.
type FungibleToken struct {
	ID                    uint   `gorm:"primaryKey"`
	SCIdentifier          string `gorm:"size:64;uniqueIndex"`
	Name                  string `gorm:"size:64"`
	Ticker                string `gorm:"size:64"`
	OwnerAddress          string `gorm:"size:255;index"`
	OriginalOwnerAddress  string `gorm:"size:255"`
	SmartContractID       string `gorm:"size:64"`
	CreateTransactionHash string `gorm:"size:255"`
	ImageBase64           string `gorm:"type:text"`
	ImageURL              *string
	DecimalPlaces         int
	InitialSupply         decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	ImageBase64URL        *string
	CanMint               bool
	CanBurn               bool
	CanVote               bool
	IsPaused              bool       `gorm:"not null;default:false"`
	BannedAddresses       StringList `gorm:"type:text"`
	NSFW                  bool       `gorm:"not null;default:false"`
}

// FungibleTokenTx is an append-only mint, burn or transfer entry.
type FungibleTokenTx struct {
	ID               uint                `gorm:"primaryKey"`
	Type             FungibleTokenTxType `gorm:"size:16;index"`
	SCIdentifier     string              `gorm:"size:64"`
	TokenID          uint                `gorm:"index"`
	ReceivingAddress *string             `gorm:"size:255;index"`
	SendingAddress   *string             `gorm:"size:255;index"`
	Amount           decimal.Decimal     `gorm:"type:numeric(32,16);not null"`
	TransactionHash  string              `gorm:"size:255;index"`
}

// TokenVoteTopic is a governance topic opened on a voting-enabled token.
type TokenVoteTopic struct {
	ID              uint            `gorm:"primaryKey"`
	SCIdentifier    string          `gorm:"size:64;index"`
	TokenID         uint            `gorm:"index"`
	FromAddress     string          `gorm:"size:255"`
	TopicID         string          `gorm:"size:32;index"`
	Name            string          `gorm:"size:128"`
	Description     string          `gorm:"type:text"`
	VoteRequirement decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	CreatedAt       time.Time       `gorm:"autoCreateTime:false"`
	VotingEndsAt    time.Time
}

// TokenVoteTopicVote is one cast vote. Value is true for a yes vote.
type TokenVoteTopicVote struct {
	ID        uint   `gorm:"primaryKey"`
	TopicID   uint   `gorm:"index"`
	Address   string `gorm:"size:255"`
	Value     bool
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// VbtcToken is a BTC-backed tokenized contract created by a Mint() mint.
type VbtcToken struct {
	ID              uint   `gorm:"primaryKey"`
	SCIdentifier    string `gorm:"size:64;uniqueIndex"`
	NftIdentifier   string `gorm:"size:64"`
	Name            string `gorm:"size:64"`
	Description     string `gorm:"type:text"`
	OwnerAddress    string `gorm:"size:255;index"`
	ImageBase64     string `gorm:"type:text"`
	ImageBase64URL  *string
	DepositAddress  string          `gorm:"size:64"`
	PublicKeyProofs string          `gorm:"type:text"`
	GlobalBalance   decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TotalReceived   decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TotalSent       decimal.Decimal `gorm:"type:numeric(32,16);not null;default:0"`
	TxCount         int
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
}

// DefaultVbtcImage marks a token that uses the stock icon.
const DefaultVbtcImage = "default"

// ImageIsDefault reports whether the token carries the stock icon.
func (t VbtcToken) ImageIsDefault() bool {
	return t.ImageBase64 == DefaultVbtcImage
}

// VbtcTokenAmountTransfer records a TransferCoin() movement of a vbtc balance.
type VbtcTokenAmountTransfer struct {
	ID              uint            `gorm:"primaryKey"`
	TokenID         uint            `gorm:"index"`
	TransactionHash string          `gorm:"size:255;index"`
	Address         string          `gorm:"size:255"`
	Amount          decimal.Decimal `gorm:"type:numeric(32,16);not null"`
	IsMulti         bool
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
}
