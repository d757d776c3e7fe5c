package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateAdnr inserts a new domain registration.
func (s *Store) CreateAdnr(ctx context.Context, a *model.Adnr) (err error) {
	defer s.observe("create_adnr", time.Now(), &err)

	if err = s.conn(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("insert adnr %s: %w", a.Domain, err)
	}
	return nil
}

// GetAdnrByDomain loads the oldest registration of domain.
func (s *Store) GetAdnrByDomain(ctx context.Context, domain string) (a *model.Adnr, err error) {
	defer s.observe("get_adnr_by_domain", time.Now(), &err)

	a = &model.Adnr{}
	if err = s.conn(ctx).Where("domain = ?", domain).Order("id").Take(a).Error; err != nil {
		return nil, fmt.Errorf("load adnr %s: %w", domain, notFound(err))
	}
	return a, nil
}

// GetAdnrByBTCAddress loads the registration linked to a BTC address.
func (s *Store) GetAdnrByBTCAddress(ctx context.Context, btcAddress string) (a *model.Adnr, err error) {
	defer s.observe("get_adnr_by_btc_address", time.Now(), &err)

	a = &model.Adnr{}
	if err = s.conn(ctx).Where("btc_address = ?", btcAddress).Order("id").Take(a).Error; err != nil {
		return nil, fmt.Errorf("load adnr for btc address %s: %w", btcAddress, notFound(err))
	}
	return a, nil
}

// SaveAdnr fully updates a.
func (s *Store) SaveAdnr(ctx context.Context, a *model.Adnr) (err error) {
	defer s.observe("save_adnr", time.Now(), &err)

	if err = s.conn(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("save adnr %s: %w", a.Domain, err)
	}
	return nil
}

// DeleteAdnr removes a registration, its transfer history and every address
// back-reference to it.
func (s *Store) DeleteAdnr(ctx context.Context, id uint) (err error) {
	defer s.observe("delete_adnr", time.Now(), &err)

	db := s.conn(ctx)
	if err = db.Model(&model.Address{}).Where("adnr_id = ?", id).Update("adnr_id", nil).Error; err != nil {
		return fmt.Errorf("detach adnr %d: %w", id, err)
	}
	if err = db.Where("adnr_id = ?", id).Delete(&model.AdnrTransfer{}).Error; err != nil {
		return fmt.Errorf("delete adnr %d transfers: %w", id, err)
	}
	if err = db.Delete(&model.Adnr{}, id).Error; err != nil {
		return fmt.Errorf("delete adnr %d: %w", id, err)
	}
	return nil
}

// AddAdnrTransfer appends a transfer transaction to a registration's history.
func (s *Store) AddAdnrTransfer(ctx context.Context, adnrID uint, hash string) (err error) {
	defer s.observe("add_adnr_transfer", time.Now(), &err)

	row := model.AdnrTransfer{AdnrID: adnrID, TransactionHash: hash}
	if err = s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("insert adnr %d transfer: %w", adnrID, err)
	}
	return nil
}

// AdnrTransfers returns the transfer history of a registration.
func (s *Store) AdnrTransfers(ctx context.Context, adnrID uint) (rows []model.AdnrTransfer, err error) {
	defer s.observe("adnr_transfers", time.Now(), &err)

	if err = s.conn(ctx).Where("adnr_id = ?", adnrID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query adnr %d transfers: %w", adnrID, err)
	}
	return rows, nil
}

// DeleteAllAdnrs removes every registration and its history.
func (s *Store) DeleteAllAdnrs(ctx context.Context) (err error) {
	defer s.observe("delete_all_adnrs", time.Now(), &err)

	db := s.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err = db.Delete(&model.AdnrTransfer{}).Error; err != nil {
		return fmt.Errorf("delete adnr transfers: %w", err)
	}
	if err = db.Delete(&model.Adnr{}).Error; err != nil {
		return fmt.Errorf("delete adnrs: %w", err)
	}
	return nil
}
