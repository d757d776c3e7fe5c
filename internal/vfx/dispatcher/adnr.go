package dispatcher

import (
	"context"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

func (d *Dispatcher) adnr(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.Adnr) error {
	domain := p.Domain()
	log := d.logger.With(zap.String("hash", tx.Hash), zap.String("domain", domain))

	if p.Function.IsBTCAdnr() {
		if invalid := p.InvalidBTCAddresses(d.btcParams); len(invalid) > 0 {
			log.Warn("adnr references undecodable btc addresses", zap.Strings("addresses", invalid))
		}
	}

	switch p.Function {
	case payload.FnAdnrCreate, payload.FnBTCAdnrCreate:
		isBTC := p.Function.IsBTCAdnr()
		a := &model.Adnr{
			Address:               tx.FromAddress,
			Domain:                domain,
			IsBTC:                 isBTC,
			CreateTransactionHash: tx.Hash,
		}
		if isBTC && p.BTCAddress != "" {
			btc := p.BTCAddress
			a.BTCAddress = &btc
		}
		if err := store.CreateAdnr(ctx, a); err != nil {
			return err
		}
		if isBTC {
			return nil
		}
		_, err := store.SetAddressAdnr(ctx, tx.FromAddress, &a.ID)
		return err

	case payload.FnAdnrTransfer:
		a, err := store.GetAdnrByDomain(ctx, domain)
		if d.missing(err, "adnr not found for transfer", zap.String("hash", tx.Hash), zap.String("domain", domain)) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := store.AddAdnrTransfer(ctx, a.ID, tx.Hash); err != nil {
			return err
		}
		a.Address = tx.ToAddress
		if err := store.SaveAdnr(ctx, a); err != nil {
			return err
		}
		if _, err := store.SetAddressAdnr(ctx, tx.FromAddress, nil); err != nil {
			return err
		}
		_, err = store.SetAddressAdnr(ctx, tx.ToAddress, &a.ID)
		return err

	case payload.FnBTCAdnrTransfer:
		a, err := store.GetAdnrByBTCAddress(ctx, p.BTCFromAddress)
		if d.missing(err, "adnr not found for btc transfer", zap.String("hash", tx.Hash), zap.String("btc_address", p.BTCFromAddress)) {
			return nil
		}
		if err != nil {
			return err
		}
		to := p.BTCToAddress
		a.BTCAddress = &to
		return store.SaveAdnr(ctx, a)

	case payload.FnAdnrDelete:
		a, err := store.GetAdnrByDomain(ctx, domain)
		if d.missing(err, "adnr not found for delete", zap.String("hash", tx.Hash), zap.String("domain", domain)) {
			return nil
		}
		if err != nil {
			return err
		}
		return store.DeleteAdnr(ctx, a.ID)

	case payload.FnBTCAdnrDelete:
		if p.BTCFromAddress == "" {
			return nil
		}
		a, err := store.GetAdnrByBTCAddress(ctx, p.BTCFromAddress)
		if d.missing(err, "adnr not found for btc delete", zap.String("hash", tx.Hash), zap.String("btc_address", p.BTCFromAddress)) {
			return nil
		}
		if err != nil {
			return err
		}
		return store.DeleteAdnr(ctx, a.ID)
	}
	return nil
}

// ReplayAdnrs rebuilds every domain registration from the ADDRESS transactions in
// chain order. Registrations and address back-references are discarded first.
func (d *Dispatcher) ReplayAdnrs(ctx context.Context, store *ledgerdb.Store) (replayed int, err error) {
	err = store.WithinTx(ctx, func(tx *ledgerdb.Store) error {
		if err := tx.DeleteAllAdnrs(ctx); err != nil {
			return err
		}
		if err := tx.ClearAddressAdnrs(ctx); err != nil {
			return err
		}

		txs, err := tx.TransactionsByType(ctx, model.TxAddress)
		if err != nil {
			return err
		}
		for _, t := range txs {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Registrations queue no collaborator calls.
			if err := d.Process(ctx, tx, &Outbox{}, t); err != nil {
				return err
			}
			replayed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return replayed, nil
}
