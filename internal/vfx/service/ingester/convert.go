package ingester

import (
	"fmt"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/pkg/safe"
)

func convertBlock(src *node.Block, masterNode *string) (model.Block, error) {
	if _, err := safe.Uint64(src.Timestamp); err != nil {
		return model.Block{}, fmt.Errorf("block %d timestamp: %w", src.Height, err)
	}

	return model.Block{
		Height:             src.Height,
		MasterNodeAddress:  masterNode,
		Hash:               src.Hash,
		PreviousHash:       src.PrevHash,
		ValidatorAddress:   src.Validator,
		ValidatorSignature: src.ValidatorSignature,
		ValidatorAnswer:    src.ValidatorAnswer,
		ChainRefID:         src.ChainRefID,
		MerkleRoot:         src.MerkleRoot,
		StateRoot:          src.StateRoot,
		TotalReward:        src.TotalReward,
		TotalAmount:        src.TotalAmount,
		TotalValidators:    src.TotalValidators,
		Version:            src.Version,
		Size:               src.Size,
		CraftTime:          src.BCraftTime,
		DateCrafted:        src.CraftedAt(),
	}, nil
}

func convertTransaction(src node.Transaction, block model.Block) (model.Transaction, error) {
	if src.UnlockTime != nil {
		if _, err := safe.Uint64(*src.UnlockTime); err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s unlock time: %w", src.Hash, err)
		}
	}

	return model.Transaction{
		Hash:        src.Hash,
		BlockHeight: block.Height,
		Height:      block.Height,
		Type:        model.TransactionType(src.TransactionType),
		ToAddress:   src.ToAddress,
		FromAddress: src.FromAddress,
		TotalAmount: src.Amount,
		TotalFee:    src.Fee,
		Data:        string(src.Data),
		Signature:   src.Signature,
		DateCrafted: block.DateCrafted,
		UnlockTime:  src.Unlock(),
	}, nil
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

