package notify

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// Event names double as the last routing key segment: <network>.<event>.
const (
	EventNewBlock          = "new_block"
	EventSaleStarted       = "sale_started"
	EventSaleCompleteCheck = "sale_complete_check"
	EventShopImport        = "shop_import"
	EventShopDelete        = "shop_delete"
	EventListingSold       = "listing_sold"
	EventIconUpload        = "icon_upload"
	EventRecovery          = "recovery"
)

// SaleCompletionDelay is how long consumers wait before completing a sale.
const SaleCompletionDelay = time.Minute

type (
	// Message is the envelope of every published event.
	Message struct {
		Event       string          `json:"event"`
		Network     model.Network   `json:"network"`
		PublishedAt time.Time       `json:"published_at"`
		Payload     json.RawMessage `json:"payload"`
	}

	NewBlock struct {
		Height            uint64          `json:"height"`
		Hash              string          `json:"hash"`
		ValidatorAddress  string          `json:"validator_address"`
		MasterNodeAddress *string         `json:"master_node_address,omitempty"`
		TotalAmount       decimal.Decimal `json:"total_amount"`
		TotalReward       decimal.Decimal `json:"total_reward"`
		DateCrafted       time.Time       `json:"date_crafted"`
	}

	SaleStarted struct {
		TransactionHash string `json:"transaction_hash"`
	}

	SaleCompleteCheck struct {
		TransactionHash string    `json:"transaction_hash"`
		NotBefore       time.Time `json:"not_before"`
	}

	ShopImport struct {
		URL      string          `json:"url"`
		ShopOnly bool            `json:"shop_only"`
		DecShop  json.RawMessage `json:"dec_shop,omitempty"`
	}

	ShopDelete struct {
		UniqueID string `json:"unique_id"`
	}

	ListingSold struct {
		ContractUID  string `json:"contract_uid"`
		OwnerAddress string `json:"owner_address"`
	}

	IconUpload struct {
		SmartContractIdentifier string `json:"sc_identifier"`
		Kind                    string `json:"kind"`
	}

	Recovery struct {
		OriginalAddress string          `json:"original_address"`
		NewAddress      string          `json:"new_address"`
		Amount          decimal.Decimal `json:"amount"`
		TransactionHash string          `json:"transaction_hash"`
	}
)

const (
	IconKindFungible = "fungible"
	IconKindVbtc     = "vbtc"
)
