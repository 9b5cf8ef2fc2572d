package indexer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nearindexer/arne/internal/core"
)

func (s *Service) saveBlocks(blocks []*core.Block) {
	for {
		err := s.blockRepo.AddBlocks(context.Background(), blocks)
		if err == nil {
			log.Debug().
				Uint64("last_height", blocks[len(blocks)-1].Height).
				Int("blocks", len(blocks)).
				Msg("inserted new blocks")
			return
		}

		log.Error().Err(err).Uint64("first_height", blocks[0].Height).Msg("cannot insert blocks")

		if !s.running() {
			return // the next run re-indexes everything past the last inserted block
		}
		time.Sleep(time.Second)
	}
}

func (s *Service) saveBlocksLoop(results <-chan *core.Block) {
	defer s.wg.Done()

	var batch []*core.Block

	for b := range results {
		batch = append(batch, b)

		if len(batch) < s.InsertBlockBatch && len(results) != 0 {
			continue
		}

		s.saveBlocks(batch)
		batch = nil
	}

	if len(batch) > 0 {
		s.saveBlocks(batch)
	}
}
