package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"gorm.io/gorm/clause"
)

const missingHeightWindow uint64 = 100_000

// BlockExists reports whether height has been ingested.
func (s *Store) BlockExists(ctx context.Context, height uint64) (exists bool, err error) {
	defer s.observe("block_exists", time.Now(), &err)

	var count int64
	if err = s.conn(ctx).Model(&model.Block{}).Where("height = ?", height).Count(&count).Error; err != nil {
		return false, fmt.Errorf("query block exists: %w", err)
	}
	return count > 0, nil
}

// GetOrCreateBlock inserts b unless a block already exists at its height. When it does,
// b is overwritten with the stored row. The first write always wins.
func (s *Store) GetOrCreateBlock(ctx context.Context, b *model.Block) (created bool, err error) {
	defer s.observe("get_or_create_block", time.Now(), &err)

	res := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(b)
	if res.Error != nil {
		return false, fmt.Errorf("insert block %d: %w", b.Height, res.Error)
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	height := b.Height
	*b = model.Block{}
	if err = s.conn(ctx).Where("height = ?", height).Take(b).Error; err != nil {
		return false, fmt.Errorf("load block %d: %w", height, notFound(err))
	}
	return false, nil
}

// GetBlock loads the block at height.
func (s *Store) GetBlock(ctx context.Context, height uint64) (b *model.Block, err error) {
	defer s.observe("get_block", time.Now(), &err)

	b = &model.Block{}
	if err = s.conn(ctx).Where("height = ?", height).Take(b).Error; err != nil {
		return nil, fmt.Errorf("load block %d: %w", height, notFound(err))
	}
	return b, nil
}

// SetBlockMasterNode updates the master node association of a block.
func (s *Store) SetBlockMasterNode(ctx context.Context, height uint64, address *string) (err error) {
	defer s.observe("set_block_master_node", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.Block{}).Where("height = ?", height).
		Update("master_node_address", address).Error; err != nil {
		return fmt.Errorf("update block %d master node: %w", height, err)
	}
	return nil
}

// MaxBlockHeight returns the highest ingested height. ok is false for an empty ledger.
func (s *Store) MaxBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	defer s.observe("max_block_height", time.Now(), &err)

	var heights []uint64
	if err = s.conn(ctx).Model(&model.Block{}).Order("height DESC").Limit(1).Pluck("height", &heights).Error; err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	if len(heights) == 0 {
		return 0, false, nil
	}
	return heights[0], true, nil
}

// CountBlocks returns the number of ingested blocks.
func (s *Store) CountBlocks(ctx context.Context) (count int64, err error) {
	defer s.observe("count_blocks", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.Block{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return count, nil
}

// MissingBlockHeights returns every height in [start, end] without a block, ascending.
func (s *Store) MissingBlockHeights(ctx context.Context, start, end uint64) (missing []uint64, err error) {
	defer s.observe("missing_block_heights", time.Now(), &err)

	if end < start {
		return nil, nil
	}

	lo := start
	for {
		hi := end
		if end-lo >= missingHeightWindow {
			hi = lo + missingHeightWindow - 1
		}

		var present []uint64
		if err = s.conn(ctx).Model(&model.Block{}).
			Where("height BETWEEN ? AND ?", lo, hi).
			Order("height").
			Pluck("height", &present).Error; err != nil {
			return nil, fmt.Errorf("query block heights %d-%d: %w", lo, hi, err)
		}
		missing = append(missing, gaps(lo, hi, present)...)

		if hi == end {
			return missing, nil
		}
		lo = hi + 1
	}
}

// gaps returns the heights in [lo, hi] absent from the sorted present slice.
func gaps(lo, hi uint64, present []uint64) []uint64 {
	var out []uint64
	next := lo
	for _, h := range present {
		for ; next < h; next++ {
			out = append(out, next)
		}
		next = h + 1
	}
	for h := next; h <= hi; h++ {
		out = append(out, h)
		if h == hi {
			break
		}
	}
	return out
}
