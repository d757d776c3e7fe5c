package dispatcher

import (
	"context"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

func (d *Dispatcher) vbtc(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.Vbtc) error {
	token, err := store.GetVbtcToken(ctx, p.ContractUID)
	if d.missing(err, "vbtc token not found", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID)) {
		return nil
	}
	if err != nil {
		return err
	}

	switch p.Function {
	case payload.FnTransferCoin:
		return store.CreateVbtcTransfer(ctx, &model.VbtcTokenAmountTransfer{
			TokenID:         token.ID,
			TransactionHash: tx.Hash,
			Address:         tx.ToAddress,
			Amount:          p.Amount,
			CreatedAt:       tx.DateCrafted,
		})
	case payload.FnTransfer:
		token.OwnerAddress = tx.ToAddress
		return store.SaveVbtcToken(ctx, token)
	}
	return nil
}
