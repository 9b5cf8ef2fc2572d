package app

import (
	"context"

	"github.com/nearindexer/arne/internal/lake"
	"github.com/nearindexer/arne/near"
)

type StreamConfig struct {
	Lake *lake.Config
}

// StreamService reads block objects from the lake bucket. Listing past the
// tip returns an empty page, blocks appear there only once finalized.
type StreamService interface {
	// ListHeights returns up to limit block heights present in the bucket,
	// starting at from inclusive.
	ListHeights(ctx context.Context, from uint64, limit int32) ([]uint64, error)
	GetBlock(ctx context.Context, height uint64) (*near.BlockView, error)
}
