package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"gorm.io/gorm/clause"
)

// GetNft loads an nft by contract identifier.
func (s *Store) GetNft(ctx context.Context, identifier string) (n *model.Nft, err error) {
	defer s.observe("get_nft", time.Now(), &err)

	n = &model.Nft{}
	if err = s.conn(ctx).Where("identifier = ?", identifier).Take(n).Error; err != nil {
		return nil, fmt.Errorf("load nft %s: %w", identifier, notFound(err))
	}
	return n, nil
}

// SaveNft inserts or fully updates n.
func (s *Store) SaveNft(ctx context.Context, n *model.Nft) (err error) {
	defer s.observe("save_nft", time.Now(), &err)

	if err = s.conn(ctx).Save(n).Error; err != nil {
		return fmt.Errorf("save nft %s: %w", n.Identifier, err)
	}
	return nil
}

// AddNftHistory appends a transaction to the history of an nft. Re-adding the same
// transaction is a no-op.
func (s *Store) AddNftHistory(ctx context.Context, identifier, hash string, kind model.NftHistoryKind) (err error) {
	defer s.observe("add_nft_history", time.Now(), &err)

	row := model.NftHistory{NftIdentifier: identifier, TransactionHash: hash, Kind: kind}
	if err = s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("insert nft %s history: %w", identifier, err)
	}
	return nil
}

// NftHistory returns the history entries of an nft.
func (s *Store) NftHistory(ctx context.Context, identifier string) (rows []model.NftHistory, err error) {
	defer s.observe("nft_history", time.Now(), &err)

	if err = s.conn(ctx).Where("nft_identifier = ?", identifier).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query nft %s history: %w", identifier, err)
	}
	return rows, nil
}

// ReassignNftOwner moves every nft owned by from to to and returns how many moved.
func (s *Store) ReassignNftOwner(ctx context.Context, from, to string) (moved int64, err error) {
	defer s.observe("reassign_nft_owner", time.Now(), &err)

	res := s.conn(ctx).Model(&model.Nft{}).Where("owner_address = ?", from).Update("owner_address", to)
	if res.Error != nil {
		return 0, fmt.Errorf("reassign nfts of %s: %w", from, res.Error)
	}
	return res.RowsAffected, nil
}
