package indexer

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository/block"
)

var _ app.IndexerService = (*Service)(nil)

type Service struct {
	*app.IndexerConfig

	blockRepo core.BlockRepository

	run bool
	mx  sync.RWMutex
	wg  sync.WaitGroup
}

func NewService(cfg *app.IndexerConfig) *Service {
	var s = new(Service)

	s.IndexerConfig = cfg
	s.blockRepo = block.NewRepository(s.DB.CH, s.DB.PG)

	return s
}

func (s *Service) running() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.run
}

func (s *Service) Start() error {
	s.mx.Lock()
	s.run = true
	s.mx.Unlock()

	blocksChan := make(chan *core.Block, 2*s.InsertBlockBatch+1)

	s.wg.Add(1)
	go s.fetchBlocksLoop(s.FromBlock.Height, blocksChan)

	s.wg.Add(1)
	go s.saveBlocksLoop(blocksChan)

	log.Info().
		Uint64("from_block", s.FromBlock.Height).
		Str("start_source", string(s.FromBlock.Source)).
		Int("insert_block_batch", s.InsertBlockBatch).
		Msg("started")

	return nil
}

func (s *Service) Stop() {
	s.mx.Lock()
	s.run = false
	s.mx.Unlock()

	s.wg.Wait()
}
