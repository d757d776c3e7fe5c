package payload

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

const (
	// FeatureTokenization is the contract feature carrying vbtc deposit data.
	FeatureTokenization = 3
	// FeatureFungibleToken is the contract feature carrying token deploy data.
	FeatureFungibleToken = 13
)

// Contract is the smart contract description returned by the node for a mint.
type Contract struct {
	Name        string    `json:"Name"`
	Description string    `json:"Description"`
	MinterName  string    `json:"MinterName"`
	IsPublished bool      `json:"IsPublished"`
	Asset       Asset     `json:"SmartContractAsset"`
	Features    []Feature `json:"Features"`
	// Raw is the document as served, before any unwrapping.
	Raw json.RawMessage `json:"-"`
}

// Asset is the primary asset attached to a contract.
type Asset struct {
	Name     string `json:"Name"`
	FileSize int64  `json:"FileSize"`
}

// Feature is one entry of the contract feature list.
type Feature struct {
	FeatureName     int             `json:"FeatureName"`
	FeatureFeatures json.RawMessage `json:"FeatureFeatures"`
}

// TokenFeature is the payload of a FeatureFungibleToken feature.
type TokenFeature struct {
	TokenName          string          `json:"TokenName"`
	TokenTicker        string          `json:"TokenTicker"`
	TokenDecimalPlaces int             `json:"TokenDecimalPlaces"`
	TokenSupply        decimal.Decimal `json:"TokenSupply"`
	TokenBurnable      bool            `json:"TokenBurnable"`
	TokenVoting        bool            `json:"TokenVoting"`
	TokenMintable      bool            `json:"TokenMintable"`
	TokenImageURL      *string         `json:"TokenImageURL"`
	TokenImageBase     string          `json:"TokenImageBase"`
}

// TokenizationFeature is the payload of a FeatureTokenization feature.
type TokenizationFeature struct {
	ImageBase       string `json:"ImageBase"`
	DepositAddress  string `json:"DepositAddress"`
	PublicKeyProofs string `json:"PublicKeyProofs"`
}

// ParseContract decodes a contract document. Newer nodes nest the contract under
// SmartContractMain; both layouts are accepted.
func ParseContract(raw []byte) (Contract, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Contract{}, quarantine("empty contract document")
	}

	var envelope struct {
		Main json.RawMessage `json:"SmartContractMain"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Contract{}, quarantine("decode contract: %v", err)
	}

	body := raw
	if len(envelope.Main) > 0 && !bytes.Equal(envelope.Main, []byte("null")) {
		body = envelope.Main
	}

	var c Contract
	if err := json.Unmarshal(body, &c); err != nil {
		return Contract{}, quarantine("decode contract body: %v", err)
	}
	c.Raw = append(json.RawMessage(nil), raw...)
	return c, nil
}

// TokenFeatures returns every fungible token feature declared by the contract.
func (c Contract) TokenFeatures() ([]TokenFeature, error) {
	var out []TokenFeature
	for _, f := range c.Features {
		if f.FeatureName != FeatureFungibleToken {
			continue
		}
		var tf TokenFeature
		if err := json.Unmarshal(f.FeatureFeatures, &tf); err != nil {
			return nil, quarantine("decode token feature: %v", err)
		}
		out = append(out, tf)
	}
	return out, nil
}

// TokenizationFeatures returns every vbtc feature declared by the contract.
func (c Contract) TokenizationFeatures() ([]TokenizationFeature, error) {
	var out []TokenizationFeature
	for _, f := range c.Features {
		if f.FeatureName != FeatureTokenization {
			continue
		}
		var tf TokenizationFeature
		if err := json.Unmarshal(f.FeatureFeatures, &tf); err != nil {
			return nil, quarantine("decode tokenization feature: %v", err)
		}
		out = append(out, tf)
	}
	return out, nil
}
