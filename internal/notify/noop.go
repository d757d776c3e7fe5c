package notify

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

// Noop drops every event. Sales are never reported as completable.
type Noop struct{}

func (Noop) NewBlock(context.Context, model.Block) error { return nil }
func (Noop) SaleStarted(context.Context, string) error { return nil }
func (Noop) CanCompleteSale(context.Context, string) (bool, error) { return false, nil }
func (Noop) ScheduleSaleCompletion(context.Context, string) error { return nil }
func (Noop) ImportShop(context.Context, string, bool, json.RawMessage) error { return nil }
func (Noop) DeleteShop(context.Context, string) error { return nil }
func (Noop) MarkListingSold(context.Context, string, string) error { return nil }
func (Noop) UploadTokenIcon(context.Context, string) error { return nil }
func (Noop) UploadVbtcIcon(context.Context, string) error { return nil }
func (Noop) Recovery(context.Context, model.Recovery) error { return nil }
