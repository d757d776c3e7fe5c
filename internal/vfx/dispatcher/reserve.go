package dispatcher

import (
	"context"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

func (d *Dispatcher) reserve(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, p payload.Reserve) error {
	switch p.Function {
	case payload.FnCallBack:
		return d.callback(ctx, store, tx, p.Hash)
	case payload.FnRecover:
		return d.recoverAddress(ctx, store, out, tx, p.RecoveryAddress)
	}
	return nil
}

func (d *Dispatcher) callback(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, originalHash string) error {
	orig, err := store.GetTransaction(ctx, originalHash)
	if d.missing(err, "callback original not found", zap.String("hash", tx.Hash), zap.String("original", originalHash)) {
		return nil
	}
	if err != nil {
		return err
	}

	switch orig.Type {
	case model.TxTransfer:
		voided, err := store.VoidTransaction(ctx, orig.Hash)
		if err != nil {
			return err
		}
		if !voided {
			d.logger.Info("callback original already voided", zap.String("hash", tx.Hash), zap.String("original", orig.Hash))
			return nil
		}
		return store.CreateCallback(ctx, &model.Callback{
			ToAddress:               orig.ToAddress,
			FromAddress:             orig.FromAddress,
			Amount:                  orig.TotalAmount,
			TransactionHash:         tx.Hash,
			OriginalTransactionHash: orig.Hash,
		})

	case model.TxNftTransfer:
		return d.moveNft(ctx, store, *orig, tx.FromAddress)
	}
	return nil
}

// moveNft assigns the nft transferred by nftTx to owner.
func (d *Dispatcher) moveNft(ctx context.Context, store *ledgerdb.Store, nftTx model.Transaction, owner string) error {
	p, err := payload.Parse(nftTx.Type, nftTx.Data)
	if err != nil {
		d.logger.Warn("nft transfer payload unreadable", zap.String("hash", nftTx.Hash), zap.Error(err))
		return nil
	}
	ref, ok := p.(payload.NftTransfer)
	if !ok {
		return nil
	}

	nft, err := store.GetNft(ctx, ref.ContractUID)
	if d.missing(err, "nft not found", zap.String("hash", nftTx.Hash), zap.String("contract", ref.ContractUID)) {
		return nil
	}
	if err != nil {
		return err
	}
	nft.OwnerAddress = owner
	return store.SaveNft(ctx, nft)
}

func (d *Dispatcher) recoverAddress(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, newAddress string) error {
	original := tx.FromAddress
	log := d.logger.With(zap.String("hash", tx.Hash), zap.String("original", original), zap.String("new", newAddress))

	existing, err := store.Balance(ctx, d.engine, original, tx.DateCrafted)
	if err != nil {
		return err
	}
	if err := store.EnsureAddress(ctx, newAddress); err != nil {
		return err
	}

	outstanding, err := store.OutstandingLockedFrom(ctx, original, tx.DateCrafted)
	if err != nil {
		return err
	}

	r := model.Recovery{
		OriginalAddress: original,
		NewAddress:      newAddress,
		Amount:          existing.Available,
		TransactionHash: tx.Hash,
	}
	for _, o := range outstanding {
		r.Outstanding = append(r.Outstanding, model.RecoveryOutstanding{TransactionHash: o.Hash})

		switch o.Type {
		case model.TxTransfer:
			if _, err := store.VoidTransaction(ctx, o.Hash); err != nil {
				return err
			}
			if err := store.CreateCallback(ctx, &model.Callback{
				ToAddress:               o.ToAddress,
				FromAddress:             newAddress,
				Amount:                  o.TotalAmount,
				TransactionHash:         o.Hash,
				OriginalTransactionHash: o.Hash,
				FromRecovery:            true,
			}); err != nil {
				return err
			}
		case model.TxNftTransfer:
			if err := d.moveNft(ctx, store, o, newAddress); err != nil {
				return err
			}
		}
	}

	if err := store.CreateRecovery(ctx, &r); err != nil {
		return err
	}
	moved, err := store.ReassignNftOwner(ctx, original, newAddress)
	if err != nil {
		return err
	}

	log.Info("address recovered",
		zap.String("amount", r.Amount.String()),
		zap.Int("outstanding", len(outstanding)),
		zap.Int64("nfts_moved", moved))
	out.add("recovery notification not sent", func(ctx context.Context) error {
		return d.notifier.Recovery(ctx, r)
	}, zap.String("hash", tx.Hash))
	return nil
}
