package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

const insertBlocksQuery = `
INSERT INTO vfx_blocks (
	network,
	height,
	hash,
	previous_hash,
	validator_address,
	master_node_address,
	merkle_root,
	state_root,
	total_reward,
	total_amount,
	total_validators,
	version,
	size,
	craft_time,
	date_crafted
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(blockRow(r.network, block)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", block.Height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

func blockRow(network model.Network, b model.Block) []any {
	return []any{
		string(network),
		b.Height,
		b.Hash,
		b.PreviousHash,
		b.ValidatorAddress,
		b.MasterNodeAddress,
		b.MerkleRoot,
		b.StateRoot,
		b.TotalReward,
		b.TotalAmount,
		int64(b.TotalValidators),
		int64(b.Version),
		int64(b.Size),
		b.CraftTime,
		b.DateCrafted.UTC(),
	}
}
