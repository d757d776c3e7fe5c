package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"gorm.io/gorm/clause"
)

// RecordMintFailure stores or refreshes the failure record of an unresolvable mint.
func (s *Store) RecordMintFailure(ctx context.Context, f *model.MintFailure) (err error) {
	defer s.observe("record_mint_failure", time.Now(), &err)

	if err = s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"contract_uid", "reason"}),
	}).Create(f).Error; err != nil {
		return fmt.Errorf("insert mint failure %s: %w", f.TransactionHash, err)
	}
	return nil
}

// MintFailures lists the recorded mint failures.
func (s *Store) MintFailures(ctx context.Context) (rows []model.MintFailure, err error) {
	defer s.observe("mint_failures", time.Now(), &err)

	if err = s.conn(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query mint failures: %w", err)
	}
	return rows, nil
}

// Quarantine records a transaction whose payload could not be interpreted.
func (s *Store) Quarantine(ctx context.Context, q *model.QuarantinedTransaction) (err error) {
	defer s.observe("quarantine", time.Now(), &err)

	if err = s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "reason"}),
	}).Create(q).Error; err != nil {
		return fmt.Errorf("insert quarantined transaction %s: %w", q.TransactionHash, err)
	}
	return nil
}

// QuarantinedTransactions lists the quarantined transactions.
func (s *Store) QuarantinedTransactions(ctx context.Context) (rows []model.QuarantinedTransaction, err error) {
	defer s.observe("quarantined_transactions", time.Now(), &err)

	if err = s.conn(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query quarantined transactions: %w", err)
	}
	return rows, nil
}

// SaveCirculation stores the singleton circulation report.
func (s *Store) SaveCirculation(ctx context.Context, c *model.Circulation) (err error) {
	defer s.observe("save_circulation", time.Now(), &err)

	c.ID = model.CirculationID
	if err = s.conn(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("save circulation: %w", err)
	}
	return nil
}

// GetCirculation loads the circulation report.
func (s *Store) GetCirculation(ctx context.Context) (c *model.Circulation, err error) {
	defer s.observe("get_circulation", time.Now(), &err)

	c = &model.Circulation{}
	if err = s.conn(ctx).Where("id = ?", model.CirculationID).Take(c).Error; err != nil {
		return nil, fmt.Errorf("load circulation: %w", notFound(err))
	}
	return c, nil
}
