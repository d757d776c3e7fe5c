package dispatcher

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/payload"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"go.uber.org/zap"
)

func (d *Dispatcher) token(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.Token) error {
	if p.Function == payload.FnTokenTopicCast {
		return d.castVote(ctx, store, tx, p)
	}

	token, err := store.GetFungibleToken(ctx, p.ContractUID)
	if d.missing(err, "fungible token not found", zap.String("hash", tx.Hash), zap.String("contract", p.ContractUID)) {
		return nil
	}
	if err != nil {
		return err
	}

	entry := model.FungibleTokenTx{
		SCIdentifier:    p.ContractUID,
		TokenID:         token.ID,
		Amount:          p.Amount,
		TransactionHash: tx.Hash,
	}

	switch p.Function {
	case payload.FnTokenMint, payload.FnTokenBurn:
		entry.Type = model.FungibleTokenMint
		if p.Function == payload.FnTokenBurn {
			entry.Type = model.FungibleTokenBurn
		}
		entry.ReceivingAddress = addressPtr(p.FromAddress)
		return store.CreateFungibleTokenTx(ctx, &entry)

	case payload.FnTokenTransfer:
		entry.Type = model.FungibleTokenTransfer
		entry.ReceivingAddress = addressPtr(p.ToAddress)
		entry.SendingAddress = addressPtr(p.FromAddress)
		return store.CreateFungibleTokenTx(ctx, &entry)

	case payload.FnTokenOwnerChange:
		token.OwnerAddress = p.ToAddress
		return store.SaveFungibleToken(ctx, token)

	case payload.FnTokenPause:
		token.IsPaused = p.Pause
		return store.SaveFungibleToken(ctx, token)

	case payload.FnTokenBanAddress:
		if slices.Contains(token.BannedAddresses, p.BanAddress) {
			return nil
		}
		token.BannedAddresses = append(token.BannedAddresses, p.BanAddress)
		return store.SaveFungibleToken(ctx, token)

	case payload.FnTokenTopicCreate:
		return d.createTopic(ctx, store, p, token)
	}
	return nil
}

func (d *Dispatcher) createTopic(ctx context.Context, store *ledgerdb.Store, p payload.Token, token *model.FungibleToken) error {
	topic, err := store.GetVoteTopic(ctx, p.ContractUID, p.Topic.TopicUID)
	if errors.Is(err, ledgerdb.ErrNotFound) {
		topic, err = &model.TokenVoteTopic{SCIdentifier: p.ContractUID}, nil
	}
	if err != nil {
		return err
	}

	topic.TokenID = token.ID
	topic.FromAddress = p.FromAddress
	topic.TopicID = p.Topic.TopicUID
	topic.Name = p.Topic.TopicName
	topic.Description = p.Topic.TopicDescription
	topic.VoteRequirement = p.Topic.MinimumVoteRequirement
	topic.CreatedAt = time.Unix(p.Topic.TopicCreateDate, 0).UTC()
	topic.VotingEndsAt = time.Unix(p.Topic.VotingEndDate, 0).UTC()
	return store.SaveVoteTopic(ctx, topic)
}

func (d *Dispatcher) castVote(ctx context.Context, store *ledgerdb.Store, tx model.Transaction, p payload.Token) error {
	topic, err := store.GetVoteTopicByTopicID(ctx, p.TopicUID)
	if d.missing(err, "vote topic not found", zap.String("hash", tx.Hash), zap.String("topic", p.TopicUID)) {
		return nil
	}
	if err != nil {
		return err
	}

	return store.CreateVote(ctx, &model.TokenVoteTopicVote{
		TopicID:   topic.ID,
		Address:   p.FromAddress,
		Value:     p.VoteYes,
		CreatedAt: tx.DateCrafted,
	})
}

func addressPtr(a string) *string {
	if a == "" {
		return nil
	}
	return &a
}
