package query

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository/block"
)

var _ app.QueryService = (*Service)(nil)

type Service struct {
	cfg *app.QueryConfig

	blockRepo core.BlockRepository
}

func NewService(_ context.Context, cfg *app.QueryConfig) (*Service, error) {
	var s = new(Service)

	s.cfg = cfg
	s.blockRepo = block.NewRepository(s.cfg.DB.CH, s.cfg.DB.PG)

	return s, nil
}

func (s *Service) GetLastBlock(ctx context.Context) (*core.Block, error) {
	return s.blockRepo.GetLastBlock(ctx)
}

func (s *Service) GetBlocks(ctx context.Context, filter *core.BlockFilter, offset, limit int) (*core.BlockFiltered, error) {
	rows, err := s.blockRepo.GetBlocks(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.blockRepo.CountBlocks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count blocks")
	}

	return &core.BlockFiltered{Total: total, Rows: rows}, nil
}

func (s *Service) GetStatus(ctx context.Context) (*app.Status, error) {
	ret := &app.Status{ChainID: string(s.cfg.ChainID)}

	indexed, err := s.blockRepo.GetLastHeight(ctx)
	switch {
	case err == nil:
		ret.IndexedHeight = indexed
	case errors.Is(err, core.ErrNotFound):
		// nothing indexed yet, keep zero
	default:
		return nil, errors.Wrap(err, "get last indexed height")
	}

	finalized, err := s.cfg.Finalized.GetFinalizedHeight(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get finalized height")
	}
	ret.FinalizedHeight = finalized

	if finalized > ret.IndexedHeight {
		ret.Lag = finalized - ret.IndexedHeight
	}

	return ret, nil
}
