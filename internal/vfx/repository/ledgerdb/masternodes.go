package ledgerdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"gorm.io/gorm"
)

// GetMasterNode loads a master node by address.
func (s *Store) GetMasterNode(ctx context.Context, address string) (n *model.MasterNode, err error) {
	defer s.observe("get_master_node", time.Now(), &err)

	n = &model.MasterNode{}
	if err = s.conn(ctx).Where("address = ?", address).Take(n).Error; err != nil {
		return nil, fmt.Errorf("load master node %s: %w", address, notFound(err))
	}
	return n, nil
}

// UpsertMasterNode inserts n or overwrites every column except the block count.
func (s *Store) UpsertMasterNode(ctx context.Context, n *model.MasterNode) (err error) {
	defer s.observe("upsert_master_node", time.Now(), &err)

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.MasterNode
		switch e := tx.Where("address = ?", n.Address).Take(&existing).Error; {
		case e == nil:
			n.BlockCount = existing.BlockCount
			return tx.Save(n).Error
		case errors.Is(e, gorm.ErrRecordNotFound):
			return tx.Create(n).Error
		default:
			return e
		}
	})
	if err != nil {
		return fmt.Errorf("upsert master node %s: %w", n.Address, err)
	}
	return nil
}

// ListMasterNodes returns every known master node.
func (s *Store) ListMasterNodes(ctx context.Context) (nodes []model.MasterNode, err error) {
	defer s.observe("list_master_nodes", time.Now(), &err)

	if err = s.conn(ctx).Order("address").Find(&nodes).Error; err != nil {
		return nil, fmt.Errorf("query master nodes: %w", err)
	}
	return nodes, nil
}

// DeactivateMasterNodesExcept marks every node not in active as inactive.
func (s *Store) DeactivateMasterNodesExcept(ctx context.Context, active []string) (err error) {
	defer s.observe("deactivate_master_nodes", time.Now(), &err)

	q := s.conn(ctx).Model(&model.MasterNode{}).Where("is_active = ?", true)
	if len(active) > 0 {
		q = q.Where("address NOT IN ?", active)
	}
	if err = q.Update("is_active", false).Error; err != nil {
		return fmt.Errorf("deactivate master nodes: %w", err)
	}
	return nil
}

// IncrementMasterNodeBlockCount bumps the validated block count of a node.
func (s *Store) IncrementMasterNodeBlockCount(ctx context.Context, address string) (err error) {
	defer s.observe("increment_master_node_block_count", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.MasterNode{}).Where("address = ?", address).
		Update("block_count", gorm.Expr("block_count + 1")).Error; err != nil {
		return fmt.Errorf("increment block count of %s: %w", address, err)
	}
	return nil
}

// ResetMasterNodeBlockCounts zeroes every block count.
func (s *Store) ResetMasterNodeBlockCounts(ctx context.Context) (err error) {
	defer s.observe("reset_master_node_block_counts", time.Now(), &err)

	if err = s.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.MasterNode{}).Update("block_count", 0).Error; err != nil {
		return fmt.Errorf("reset master node block counts: %w", err)
	}
	return nil
}

// SetMasterNodeBlockCount stores a recounted block count.
func (s *Store) SetMasterNodeBlockCount(ctx context.Context, address string, count int) (err error) {
	defer s.observe("set_master_node_block_count", time.Now(), &err)

	if err = s.conn(ctx).Model(&model.MasterNode{}).Where("address = ?", address).
		Update("block_count", count).Error; err != nil {
		return fmt.Errorf("set block count of %s: %w", address, err)
	}
	return nil
}

// MasterNodeBlockCounts counts blocks per attached master node.
func (s *Store) MasterNodeBlockCounts(ctx context.Context) (counts map[string]int, err error) {
	defer s.observe("master_node_block_counts", time.Now(), &err)

	var rows []struct {
		MasterNodeAddress string
		Count             int
	}
	if err = s.conn(ctx).Model(&model.Block{}).
		Select("master_node_address, COUNT(*) AS count").
		Where("master_node_address IS NOT NULL").
		Group("master_node_address").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count blocks per master node: %w", err)
	}

	counts = make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.MasterNodeAddress] = r.Count
	}
	return counts, nil
}

// AttachBlocksToMasterNodes links blocks without a master node to the node whose address
// matches their validator, and returns how many blocks were linked.
func (s *Store) AttachBlocksToMasterNodes(ctx context.Context) (attached int64, err error) {
	defer s.observe("attach_blocks_to_master_nodes", time.Now(), &err)

	const query = `
UPDATE blocks SET master_node_address = validator_address
WHERE master_node_address IS NULL
  AND validator_address IN (SELECT address FROM master_nodes)`

	res := s.conn(ctx).Exec(query)
	if res.Error != nil {
		return 0, fmt.Errorf("attach blocks to master nodes: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CountMasterNodes counts all nodes, or only the active ones.
func (s *Store) CountMasterNodes(ctx context.Context, activeOnly bool) (count int64, err error) {
	defer s.observe("count_master_nodes", time.Now(), &err)

	q := s.conn(ctx).Model(&model.MasterNode{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err = q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count master nodes: %w", err)
	}
	return count, nil
}
