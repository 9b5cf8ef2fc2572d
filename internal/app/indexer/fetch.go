package indexer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nearindexer/arne/internal/core"
)

const listPageSize = 100

func (s *Service) fetchBlock(ctx context.Context, height uint64) (*core.Block, error) {
	view, err := s.Stream.GetBlock(ctx, height)
	if err != nil {
		return nil, err
	}

	return mapBlock(view)
}

func (s *Service) fetchBlocksLoop(fromBlock uint64, results chan<- *core.Block) {
	defer s.wg.Done()
	defer close(results)

	for height := fromBlock; s.running(); {
		ctx := context.Background()

		heights, err := s.Stream.ListHeights(ctx, height, listPageSize)
		if err != nil {
			log.Error().Err(err).Uint64("height", height).Msg("cannot list block heights")
			time.Sleep(time.Second)
			continue
		}

		if len(heights) == 0 {
			// caught up with the lake tip
			time.Sleep(s.FetchBlockPeriod)
			continue
		}

		for _, h := range heights {
			if !s.running() {
				return
			}

			b, err := s.fetchBlock(ctx, h)
			if err != nil {
				log.Error().Err(err).Uint64("height", h).Msg("cannot fetch block")
				time.Sleep(time.Second)
				break
			}

			lvl := log.Debug()
			if h%100 == 0 {
				lvl = log.Info()
			}
			lvl.Uint64("height", h).Str("author", b.Author).Msg("new block")

			results <- b
			height = h + 1
		}
	}
}
