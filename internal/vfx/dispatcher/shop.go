package dispatcher

import (
	"context"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"go.uber.org/zap"
)

func (d *Dispatcher) shopRegistration(out *Outbox, tx model.Transaction, p payload.Shop) {
	switch p.Function {
	case payload.FnDecShopCreate, payload.FnDecShopUpdate:
		shopOnly := p.Function == payload.FnDecShopCreate
		out.add("shop import not scheduled", func(ctx context.Context) error {
			return d.shop.ImportShop(ctx, p.URL, shopOnly, p.DecShop)
		}, zap.String("hash", tx.Hash), zap.String("url", p.URL))
	case payload.FnDecShopDelete:
		out.add("shop delete not applied", func(ctx context.Context) error {
			return d.shop.DeleteShop(ctx, p.UniqueID)
		}, zap.String("hash", tx.Hash), zap.String("unique_id", p.UniqueID))
	}
}
