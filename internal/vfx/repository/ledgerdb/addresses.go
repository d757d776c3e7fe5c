package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureAddress creates the address row with a zero balance if it is missing.
func (s *Store) EnsureAddress(ctx context.Context, address string) (err error) {
	defer s.observe("ensure_address", time.Now(), &err)

	row := model.Address{Address: address, Balance: decimal.Zero}
	if err = s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("ensure address %s: %w", address, err)
	}
	return nil
}

// IncrementAddressBalance adds delta to the cached balance of address, creating the row
// when needed. The update is a single SQL increment.
func (s *Store) IncrementAddressBalance(ctx context.Context, address string, delta decimal.Decimal) (err error) {
	defer s.observe("increment_address_balance", time.Now(), &err)

	row := model.Address{Address: address, Balance: delta}
	if err = s.conn(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance": gorm.Expr("addresses.balance + ?", delta),
		}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("increment balance of %s: %w", address, err)
	}
	return nil
}

// GetAddress loads a cached address row.
func (s *Store) GetAddress(ctx context.Context, address string) (a *model.Address, err error) {
	defer s.observe("get_address", time.Now(), &err)

	a = &model.Address{}
	if err = s.conn(ctx).Where("address = ?", address).Take(a).Error; err != nil {
		return nil, fmt.Errorf("load address %s: %w", address, notFound(err))
	}
	return a, nil
}

// DeleteAllAddresses drops the whole balance cache.
func (s *Store) DeleteAllAddresses(ctx context.Context) (err error) {
	defer s.observe("delete_all_addresses", time.Now(), &err)

	if err = s.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Address{}).Error; err != nil {
		return fmt.Errorf("delete addresses: %w", err)
	}
	return nil
}

// SetAddressAdnr points address at an adnr, or clears it when adnrID is nil. found is
// false when no such address row exists.
func (s *Store) SetAddressAdnr(ctx context.Context, address string, adnrID *uint) (found bool, err error) {
	defer s.observe("set_address_adnr", time.Now(), &err)

	res := s.conn(ctx).Model(&model.Address{}).Where("address = ?", address).Update("adnr_id", adnrID)
	if res.Error != nil {
		return false, fmt.Errorf("set adnr of %s: %w", address, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ClearAddressAdnrs removes every adnr back-reference.
func (s *Store) ClearAddressAdnrs(ctx context.Context) (err error) {
	defer s.observe("clear_address_adnrs", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.Address{}).Where("adnr_id IS NOT NULL").
		Update("adnr_id", nil).Error; err != nil {
		return fmt.Errorf("clear address adnrs: %w", err)
	}
	return nil
}

// SaveAddressBalances bulk inserts a rebuilt balance cache.
func (s *Store) SaveAddressBalances(ctx context.Context, balances map[string]decimal.Decimal) (err error) {
	defer s.observe("save_address_balances", time.Now(), &err)

	if len(balances) == 0 {
		return nil
	}
	rows := make([]model.Address, 0, len(balances))
	for addr, bal := range balances {
		rows = append(rows, model.Address{Address: addr, Balance: bal})
	}
	if err = s.conn(ctx).CreateInBatches(rows, defaultBatchSize).Error; err != nil {
		return fmt.Errorf("insert address balances: %w", err)
	}
	return nil
}

// CountAddresses returns the size of the balance cache.
func (s *Store) CountAddresses(ctx context.Context) (count int64, err error) {
	defer s.observe("count_addresses", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.Address{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count addresses: %w", err)
	}
	return count, nil
}
