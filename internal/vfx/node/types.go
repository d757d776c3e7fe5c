// Package node talks to the chain node and its smart contract API over JSON/HTTP.
package node

import (
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type (
	// Block is a block as served by api/V1/SendBlock.
	Block struct {
		Height             uint64          `json:"Height"`
		Hash               string          `json:"Hash"`
		PrevHash           string          `json:"PrevHash"`
		Validator          string          `json:"Validator"`
		ValidatorSignature string          `json:"ValidatorSignature"`
		ValidatorAnswer    string          `json:"ValidatorAnswer"`
		ChainRefID         string          `json:"ChainRefId"`
		MerkleRoot         string          `json:"MerkleRoot"`
		StateRoot          string          `json:"StateRoot"`
		TotalReward        decimal.Decimal `json:"TotalReward"`
		TotalAmount        decimal.Decimal `json:"TotalAmount"`
		TotalValidators    int             `json:"TotalValidators"`
		Version            int             `json:"Version"`
		Size               int             `json:"Size"`
		BCraftTime         int64           `json:"BCraftTime"`
		Timestamp          int64           `json:"Timestamp"`
		Transactions       []Transaction   `json:"Transactions"`
	}

	// Transaction is one entry of Block.Transactions.
	Transaction struct {
		Hash            string          `json:"Hash"`
		TransactionType int             `json:"TransactionType"`
		ToAddress       string          `json:"ToAddress"`
		FromAddress     string          `json:"FromAddress"`
		Amount          decimal.Decimal `json:"Amount"`
		Fee             decimal.Decimal `json:"Fee"`
		Data            Data            `json:"Data"`
		Signature       string          `json:"Signature"`
		UnlockTime      *int64          `json:"UnlockTime"`
	}

	// MasterNode is an entry of api/V1/GetMasternodesSent.
	MasterNode struct {
		Address            string  `json:"Address"`
		UniqueName         *string `json:"UniqueName"`
		IPAddress          string  `json:"IpAddress"`
		WalletVersion      string  `json:"WalletVersion"`
		ConnectDate        string  `json:"ConnectDate"`
		LastAnswerSendDate string  `json:"LastAnswerSendDate"`
	}

	walletInfo struct {
		BlockHeight uint64 `json:"BlockHeight"`
	}
)

// CraftedAt returns the block timestamp in UTC.
func (b Block) CraftedAt() time.Time {
	return time.Unix(b.Timestamp, 0).UTC()
}

// Unlock returns the unlock time of t, or nil when the transaction is not time locked.
func (t Transaction) Unlock() *time.Time {
	if t.UnlockTime == nil || *t.UnlockTime == 0 {
		return nil
	}
	u := time.Unix(*t.UnlockTime, 0).UTC()
	return &u
}

// Data is the opaque payload of a transaction. The node serves it either as a JSON
// encoded string or inline; both decode to the same text.
type Data string

// UnmarshalJSON implements json.Unmarshaler.
func (d *Data) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			var str string
			if err := json.Unmarshal(b, &str); err != nil {
				return err
			}
			s = str
		}
		*d = Data(s)
		return nil
	}
	*d = Data(b)
	return nil
}
