package dispatcher

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ContractSource resolves smart contract documents.
	ContractSource interface {
		GetSmartContract(ctx context.Context, id string) (json.RawMessage, error)
	}

	// Shop is the marketplace side of sales and shop registrations.
	Shop interface {
		CanCompleteSale(ctx context.Context, txHash string) (bool, error)
		ScheduleSaleCompletion(ctx context.Context, txHash string) error
		ImportShop(ctx context.Context, url string, shopOnly bool, decShop json.RawMessage) error
		DeleteShop(ctx context.Context, uniqueID string) error
		MarkListingSold(ctx context.Context, contractUID, ownerAddress string) error
	}

	// Notifier delivers stakeholder notifications.
	Notifier interface {
		SaleStarted(ctx context.Context, txHash string) error
		Recovery(ctx context.Context, r model.Recovery) error
	}

	// IconUploader schedules token icon uploads.
	IconUploader interface {
		UploadTokenIcon(ctx context.Context, scIdentifier string) error
		UploadVbtcIcon(ctx context.Context, scIdentifier string) error
	}

	// Metrics records dispatch outcomes.
	Metrics interface {
		ObserveDispatch(txType string, err error, started time.Time)
		ObserveQuarantine(txType string)
	}
)
