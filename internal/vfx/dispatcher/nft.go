package dispatcher

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

func (d *Dispatcher) mint(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, p payload.Mint) error {
	d.logger.Info("nft mint", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID))

	raw, err := d.contracts.GetSmartContract(ctx, p.ContractUID)
	if err == nil {
		var c payload.Contract
		if c, err = payload.ParseContract(raw); err == nil {
			return d.applyContract(ctx, store, out, tx, p, c)
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	d.logger.Error("smart contract unresolved, mint left without nft",
		zap.String("hash", tx.Hash),
		zap.String("contract", p.ContractUID),
		zap.Error(err))
	return store.RecordMintFailure(ctx, &model.MintFailure{
		TransactionHash: tx.Hash,
		ContractUID:     p.ContractUID,
		Reason:          err.Error(),
	})
}

func (d *Dispatcher) applyContract(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, p payload.Mint, c payload.Contract) error {
	nft, err := store.GetNft(ctx, p.ContractUID)
	if errors.Is(err, ledgerdb.ErrNotFound) {
		nft, err = &model.Nft{Identifier: p.ContractUID}, nil
	}
	if err != nil {
		return err
	}

	hash := tx.Hash
	nft.Name = c.Name
	nft.Description = c.Description
	nft.MinterName = c.MinterName
	nft.MinterAddress = tx.FromAddress
	nft.OwnerAddress = tx.FromAddress
	nft.Data = tx.Data
	nft.MintTransactionHash = &hash
	nft.MintedAt = tx.DateCrafted
	nft.IsPublished = c.IsPublished
	nft.PrimaryAssetName = c.Asset.Name
	nft.PrimaryAssetSize = c.Asset.FileSize
	nft.SmartContractData = string(c.Raw)
	nft.OnChain = true

	switch p.Function {
	case payload.FnTokenDeploy:
		if err := d.deployTokens(ctx, store, out, tx, nft, c); err != nil {
			return err
		}
	case payload.FnMint:
		if err := d.mintVbtc(ctx, store, out, tx, nft, c); err != nil {
			return err
		}
	}

	if err := store.SaveNft(ctx, nft); err != nil {
		return err
	}
	return store.SetTransactionNft(ctx, tx.Hash, nft.Identifier)
}

func (d *Dispatcher) deployTokens(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, nft *model.Nft, c payload.Contract) error {
	features, err := c.TokenFeatures()
	if err != nil {
		d.logger.Warn("skipping token features", zap.String("contract", nft.Identifier), zap.Error(err))
		return nil
	}

	for _, f := range features {
		token, err := store.GetFungibleToken(ctx, nft.Identifier)
		if errors.Is(err, ledgerdb.ErrNotFound) {
			token, err = &model.FungibleToken{SCIdentifier: nft.Identifier}, nil
		}
		if err != nil {
			return err
		}

		token.SmartContractID = nft.Identifier
		token.CreateTransactionHash = tx.Hash
		token.Name = f.TokenName
		token.Ticker = f.TokenTicker
		token.DecimalPlaces = f.TokenDecimalPlaces
		token.InitialSupply = f.TokenSupply
		token.CanBurn = f.TokenBurnable
		token.CanVote = f.TokenVoting
		token.CanMint = f.TokenMintable
		token.ImageURL = f.TokenImageURL
		token.ImageBase64 = f.TokenImageBase
		token.OwnerAddress = tx.FromAddress
		token.OriginalOwnerAddress = tx.FromAddress
		if err := store.SaveFungibleToken(ctx, token); err != nil {
			return err
		}

		nft.IsFungibleToken = true
		id := token.SCIdentifier
		out.add("token icon upload not scheduled", func(ctx context.Context) error {
			return d.icons.UploadTokenIcon(ctx, id)
		}, zap.String("contract", id))
	}
	return nil
}

func (d *Dispatcher) mintVbtc(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, nft *model.Nft, c payload.Contract) error {
	features, err := c.TokenizationFeatures()
	if err != nil {
		d.logger.Warn("skipping tokenization features", zap.String("contract", nft.Identifier), zap.Error(err))
		return nil
	}

	for _, f := range features {
		token, err := store.GetVbtcToken(ctx, nft.Identifier)
		if errors.Is(err, ledgerdb.ErrNotFound) {
			token, err = &model.VbtcToken{SCIdentifier: nft.Identifier}, nil
		}
		if err != nil {
			return err
		}

		token.NftIdentifier = nft.Identifier
		token.Name = nft.Name
		token.Description = nft.Description
		token.OwnerAddress = nft.OwnerAddress
		token.ImageBase64 = f.ImageBase
		token.DepositAddress = f.DepositAddress
		token.PublicKeyProofs = f.PublicKeyProofs
		token.CreatedAt = tx.DateCrafted
		if err := store.SaveVbtcToken(ctx, token); err != nil {
			return err
		}

		nft.IsVbtc = true
		if token.ImageIsDefault() {
			continue
		}
		id := token.SCIdentifier
		out.add("vbtc icon upload not scheduled", func(ctx context.Context) error {
			return d.icons.UploadVbtcIcon(ctx, id)
		}, zap.String("contract", id))
	}
	return nil
}

func (d *Dispatcher) nftTransfer(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.NftTransfer) error {
	nft, err := store.GetNft(ctx, p.ContractUID)
	if d.missing(err, "nft not found for transfer", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID)) {
		return nil
	}
	if err != nil {
		return err
	}

	if p.Function == payload.FnTransfer {
		nft.OwnerAddress = tx.ToAddress
		if err := store.AddNftHistory(ctx, nft.Identifier, tx.Hash, model.NftHistoryTransfer); err != nil {
			return err
		}
	} else {
		if err := store.AddNftHistory(ctx, nft.Identifier, tx.Hash, model.NftHistoryMisc); err != nil {
			return err
		}
		raw, err := d.contracts.GetSmartContract(ctx, nft.Identifier)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d.logger.Warn("evolved contract state unavailable", zap.String("contract", nft.Identifier), zap.Error(err))
		} else {
			nft.SmartContractData = string(raw)
		}
	}
	return store.SaveNft(ctx, nft)
}

func (d *Dispatcher) nftBurn(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.NftBurn) error {
	nft, err := store.GetNft(ctx, p.ContractUID)
	if d.missing(err, "nft not found for burn", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID)) {
		return nil
	}
	if err != nil {
		return err
	}

	hash := tx.Hash
	nft.BurnTransactionHash = &hash
	return store.SaveNft(ctx, nft)
}

func (d *Dispatcher) sale(ctx context.Context, store *ledgerdb.Store, out *Outbox, tx model.Transaction, p payload.Sale) error {
	switch p.Function {
	case payload.FnSaleStart:
		hash := tx.Hash
		out.add("sale start not handed off", func(ctx context.Context) error {
			canComplete, err := d.shop.CanCompleteSale(ctx, hash)
			d.external(err, "sale completion check failed", zap.String("hash", hash))
			if canComplete {
				return d.shop.ScheduleSaleCompletion(ctx, hash)
			}
			return d.notifier.SaleStarted(ctx, hash)
		}, zap.String("hash", hash))
		return nil

	case payload.FnSaleComplete:
		if len(p.Transactions) == 0 {
			return nil
		}
		nft, err := store.GetNft(ctx, p.ContractUID)
		if d.missing(err, "nft not found for sale", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID)) {
			return nil
		}
		if err != nil {
			return err
		}

		buyer := tx.ToAddress
		if first := p.Transactions[0]; first.FromAddress != nil {
			buyer = *first.FromAddress
		}
		nft.OwnerAddress = buyer
		if err := store.AddNftHistory(ctx, nft.Identifier, tx.Hash, model.NftHistorySale); err != nil {
			return err
		}
		if err := store.SaveNft(ctx, nft); err != nil {
			return err
		}

		contractUID, owner := p.ContractUID, tx.ToAddress
		out.add("listing not marked sold", func(ctx context.Context) error {
			return d.shop.MarkListingSold(ctx, contractUID, owner)
		}, zap.String("contract", contractUID), zap.String("owner", owner))
	}
	return nil
}
