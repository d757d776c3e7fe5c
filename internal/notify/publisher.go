// Package notify publishes ledger events to an AMQP topic exchange. Downstream
// consumers own the shop, mail and icon pipelines.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/clock"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Publisher implements the dispatcher and sync driver collaborators on top of AMQP.
type Publisher struct {
	conn     *amqp.Connection
	open     func() (Channel, error)
	mu       sync.Mutex
	ch       Channel
	exchange string
	network  model.Network
	metrics  Metrics
	now      func() time.Time
	logger   *zap.Logger
}

// Dial connects to the broker at url and declares exchange as a durable topic exchange.
func Dial(url, exchange string, network model.Network, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	open := func() (Channel, error) {
		return conn.Channel()
	}
	p, err := newPublisher(open, exchange, network, metrics, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(open func() (Channel, error), exchange string, network model.Network, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("amqp exchange is required")
	}
	if metrics == nil {
		return nil, errors.New("notifier metrics is required")
	}

	ch, err := open()
	if err != nil {
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		open:     open,
		ch:       ch,
		exchange: exchange,
		network:  network,
		metrics:  metrics,
		now:      clock.UTCNow,
		logger:   logger.Named("notify"),
	}, nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
		p.ch = nil
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

func (p *Publisher) publish(ctx context.Context, event string, payload any) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObservePublish(event, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}
	now := p.now().UTC()
	msg, err := json.Marshal(Message{
		Event:       event,
		Network:     p.network,
		PublishedAt: now,
		Payload:     body,
	})
	if err != nil {
		return fmt.Errorf("encode %s message: %w", event, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		if p.ch, err = p.open(); err != nil {
			p.ch = nil
			return fmt.Errorf("reopen amqp channel: %w", err)
		}
	}

	err = p.ch.Publish(p.exchange, string(p.network)+"."+event, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Type:         event,
		Body:         msg,
	})
	if errors.Is(err, amqp.ErrClosed) {
		p.logger.Warn("amqp channel closed, reopening on next publish", zap.String("event", event))
		p.ch = nil
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", event, err)
	}
	return nil
}

// NewBlock announces a newly stored block.
func (p *Publisher) NewBlock(ctx context.Context, b model.Block) error {
	return p.publish(ctx, EventNewBlock, NewBlock{
		Height:            b.Height,
		Hash:              b.Hash,
		ValidatorAddress:  b.ValidatorAddress,
		MasterNodeAddress: b.MasterNodeAddress,
		TotalAmount:       b.TotalAmount,
		TotalReward:       b.TotalReward,
		DateCrafted:       b.DateCrafted,
	})
}

// SaleStarted asks the mail pipeline to notify the parties of a started sale.
func (p *Publisher) SaleStarted(ctx context.Context, txHash string) error {
	return p.publish(ctx, EventSaleStarted, SaleStarted{TransactionHash: txHash})
}

// CanCompleteSale always reports true. The shop consumer of sale_complete_check looks
// up the pre-signed completion and falls back to the sale started mail when none exists.
func (p *Publisher) CanCompleteSale(context.Context, string) (bool, error) {
	return true, nil
}

// ScheduleSaleCompletion asks the shop to complete the sale after SaleCompletionDelay.
func (p *Publisher) ScheduleSaleCompletion(ctx context.Context, txHash string) error {
	return p.publish(ctx, EventSaleCompleteCheck, SaleCompleteCheck{
		TransactionHash: txHash,
		NotBefore:       p.now().UTC().Add(SaleCompletionDelay),
	})
}

func (p *Publisher) ImportShop(ctx context.Context, url string, shopOnly bool, decShop json.RawMessage) error {
	return p.publish(ctx, EventShopImport, ShopImport{URL: url, ShopOnly: shopOnly, DecShop: decShop})
}

func (p *Publisher) DeleteShop(ctx context.Context, uniqueID string) error {
	return p.publish(ctx, EventShopDelete, ShopDelete{UniqueID: uniqueID})
}

func (p *Publisher) MarkListingSold(ctx context.Context, contractUID, ownerAddress string) error {
	return p.publish(ctx, EventListingSold, ListingSold{ContractUID: contractUID, OwnerAddress: ownerAddress})
}

func (p *Publisher) UploadTokenIcon(ctx context.Context, scIdentifier string) error {
	return p.publish(ctx, EventIconUpload, IconUpload{SmartContractIdentifier: scIdentifier, Kind: IconKindFungible})
}

func (p *Publisher) UploadVbtcIcon(ctx context.Context, scIdentifier string) error {
	return p.publish(ctx, EventIconUpload, IconUpload{SmartContractIdentifier: scIdentifier, Kind: IconKindVbtc})
}

// Recovery announces a completed address recovery.
func (p *Publisher) Recovery(ctx context.Context, r model.Recovery) error {
	return p.publish(ctx, EventRecovery, Recovery{
		OriginalAddress: r.OriginalAddress,
		NewAddress:      r.NewAddress,
		Amount:          r.Amount,
		TransactionHash: r.TransactionHash,
	})
}
