package app

import (
	"context"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository"
	"github.com/nearindexer/arne/near"
)

type QueryConfig struct {
	DB *repository.DB

	ChainID   near.ChainID
	Finalized FinalizedHeightSource
}

// Status compares how far the indexer got with how far the chain got.
type Status struct {
	ChainID         string `json:"chain_id"`
	IndexedHeight   uint64 `json:"indexed_height"`
	FinalizedHeight uint64 `json:"finalized_height"`
	Lag             uint64 `json:"lag"`
}

type QueryService interface {
	GetLastBlock(ctx context.Context) (*core.Block, error)
	GetBlocks(ctx context.Context, filter *core.BlockFilter, offset, limit int) (*core.BlockFiltered, error)
	GetStatus(ctx context.Context) (*Status, error)
}
