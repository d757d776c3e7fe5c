package ledgerdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
)

// GetFungibleToken loads a token by smart contract identifier.
func (s *Store) GetFungibleToken(ctx context.Context, scIdentifier string) (t *model.FungibleToken, err error) {
	defer s.observe("get_fungible_token", time.Now(), &err)

	t = &model.FungibleToken{}
	if err = s.conn(ctx).Where("sc_identifier = ?", scIdentifier).Take(t).Error; err != nil {
		return nil, fmt.Errorf("load fungible token %s: %w", scIdentifier, notFound(err))
	}
	return t, nil
}

// SaveFungibleToken inserts or fully updates t.
func (s *Store) SaveFungibleToken(ctx context.Context, t *model.FungibleToken) (err error) {
	defer s.observe("save_fungible_token", time.Now(), &err)

	if err = s.conn(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("save fungible token %s: %w", t.SCIdentifier, err)
	}
	return nil
}

// CreateFungibleTokenTx appends a token ledger entry.
func (s *Store) CreateFungibleTokenTx(ctx context.Context, tx *model.FungibleTokenTx) (err error) {
	defer s.observe("create_fungible_token_tx", time.Now(), &err)

	if err = s.conn(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("insert fungible token tx: %w", err)
	}
	return nil
}

// FungibleTokenTxs returns the ledger entries of a token.
func (s *Store) FungibleTokenTxs(ctx context.Context, tokenID uint) (txs []model.FungibleTokenTx, err error) {
	defer s.observe("fungible_token_txs", time.Now(), &err)

	if err = s.conn(ctx).Where("token_id = ?", tokenID).Order("id").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("query fungible token %d txs: %w", tokenID, err)
	}
	return txs, nil
}

// GetVoteTopic loads a topic by contract and topic id.
func (s *Store) GetVoteTopic(ctx context.Context, scIdentifier, topicID string) (t *model.TokenVoteTopic, err error) {
	defer s.observe("get_vote_topic", time.Now(), &err)

	t = &model.TokenVoteTopic{}
	if err = s.conn(ctx).Where("sc_identifier = ? AND topic_id = ?", scIdentifier, topicID).
		Take(t).Error; err != nil {
		return nil, fmt.Errorf("load vote topic %s: %w", topicID, notFound(err))
	}
	return t, nil
}

// GetVoteTopicByTopicID loads a topic by topic id alone, as vote casts carry no contract.
func (s *Store) GetVoteTopicByTopicID(ctx context.Context, topicID string) (t *model.TokenVoteTopic, err error) {
	defer s.observe("get_vote_topic_by_topic_id", time.Now(), &err)

	t = &model.TokenVoteTopic{}
	if err = s.conn(ctx).Where("topic_id = ?", topicID).Order("id").Take(t).Error; err != nil {
		return nil, fmt.Errorf("load vote topic %s: %w", topicID, notFound(err))
	}
	return t, nil
}

// SaveVoteTopic inserts or fully updates t.
func (s *Store) SaveVoteTopic(ctx context.Context, t *model.TokenVoteTopic) (err error) {
	defer s.observe("save_vote_topic", time.Now(), &err)

	if err = s.conn(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("save vote topic %s: %w", t.TopicID, err)
	}
	return nil
}

// CreateVote appends a vote to a topic.
func (s *Store) CreateVote(ctx context.Context, v *model.TokenVoteTopicVote) (err error) {
	defer s.observe("create_vote", time.Now(), &err)

	if err = s.conn(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("insert vote on topic %d: %w", v.TopicID, err)
	}
	return nil
}

// Votes returns the votes cast on a topic.
func (s *Store) Votes(ctx context.Context, topicID uint) (votes []model.TokenVoteTopicVote, err error) {
	defer s.observe("votes", time.Now(), &err)

	if err = s.conn(ctx).Where("topic_id = ?", topicID).Order("id").Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("query votes on topic %d: %w", topicID, err)
	}
	return votes, nil
}
