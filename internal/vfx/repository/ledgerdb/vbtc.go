package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/balance"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// GetVbtcToken loads a vbtc token by smart contract identifier.
func (s *Store) GetVbtcToken(ctx context.Context, scIdentifier string) (t *model.VbtcToken, err error) {
	defer s.observe("get_vbtc_token", time.Now(), &err)

	t = &model.VbtcToken{}
	if err = s.conn(ctx).Where("sc_identifier = ?", scIdentifier).Take(t).Error; err != nil {
		return nil, fmt.Errorf("load vbtc token %s: %w", scIdentifier, notFound(err))
	}
	return t, nil
}

// SaveVbtcToken inserts or fully updates t.
func (s *Store) SaveVbtcToken(ctx context.Context, t *model.VbtcToken) (err error) {
	defer s.observe("save_vbtc_token", time.Now(), &err)

	if err = s.conn(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("save vbtc token %s: %w", t.SCIdentifier, err)
	}
	return nil
}

// CreateVbtcTransfer appends a vbtc amount transfer.
func (s *Store) CreateVbtcTransfer(ctx context.Context, t *model.VbtcTokenAmountTransfer) (err error) {
	defer s.observe("create_vbtc_transfer", time.Now(), &err)

	if err = s.conn(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("insert vbtc transfer %s: %w", t.TransactionHash, err)
	}
	return nil
}

type vbtcTransferRow struct {
	Amount      decimal.Decimal
	ToAddress   string
	FromAddress string
}

// VbtcTransfers returns the amount transfers of a token joined with the addresses of
// the transactions that carried them.
func (s *Store) VbtcTransfers(ctx context.Context, tokenID uint) (out []balance.VbtcTransfer, err error) {
	defer s.observe("vbtc_transfers", time.Now(), &err)

	var rows []vbtcTransferRow
	if err = s.conn(ctx).Model(&model.VbtcTokenAmountTransfer{}).
		Select("vbtc_token_amount_transfers.amount, transactions.to_address, transactions.from_address").
		Joins("JOIN transactions ON transactions.hash = vbtc_token_amount_transfers.transaction_hash").
		Where("vbtc_token_amount_transfers.token_id = ?", tokenID).
		Order("vbtc_token_amount_transfers.id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query vbtc token %d transfers: %w", tokenID, err)
	}

	out = make([]balance.VbtcTransfer, 0, len(rows))
	for _, r := range rows {
		out = append(out, balance.VbtcTransfer(r))
	}
	return out, nil
}
