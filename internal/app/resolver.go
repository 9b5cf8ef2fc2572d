package app

import (
	"context"

	"github.com/nearindexer/arne/internal/core"
)

// PersistedHeightSource is the piece of the block store resolution needs,
// the height of the last block an earlier run managed to save.
type PersistedHeightSource interface {
	GetLastHeight(ctx context.Context) (uint64, error)
}

// FinalizedHeightSource reports the newest height the network considers final.
type FinalizedHeightSource interface {
	GetFinalizedHeight(ctx context.Context) (uint64, error)
}

type ResolverConfig struct {
	Persisted PersistedHeightSource
	Finalized FinalizedHeightSource
}

type ResolverService interface {
	ResolveStartHeight(ctx context.Context, mode core.StartMode) (*core.ResolvedStartHeight, error)
}
