package resolver

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
)

var _ app.ResolverService = (*Service)(nil)

// Service turns an operator start mode into the exact height the stream
// begins at. It holds no state and makes at most one query per source, so
// resolving the same mode against the same sources always agrees.
//
// An unreachable block store only costs a warning, the run still comes up
// on the latest final block. An unreachable node is the end of the line,
// there is nothing left to fall back to.
type Service struct {
	*app.ResolverConfig
}

func NewService(cfg *app.ResolverConfig) *Service {
	return &Service{ResolverConfig: cfg}
}

func (s *Service) ResolveStartHeight(ctx context.Context, mode core.StartMode) (*core.ResolvedStartHeight, error) {
	switch mode.Kind {
	case core.StartModeFromHeight:
		return &core.ResolvedStartHeight{Height: mode.Height, Source: core.StartSourceExplicit}, nil

	case core.StartModeFromInterruption:
		h, err := s.Persisted.GetLastHeight(ctx)
		switch {
		case err == nil:
			return &core.ResolvedStartHeight{Height: h, Source: core.StartSourcePersisted}, nil

		case errors.Is(err, core.ErrNotFound):
			log.Info().Msg("no blocks indexed so far, starting from the latest final block")

		default:
			log.Warn().Err(err).Msg("cannot get last indexed height, starting from the latest final block")
		}
		return s.fromLatest(ctx)

	case core.StartModeFromLatest:
		return s.fromLatest(ctx)
	}

	return nil, errors.Errorf("unknown start mode %d", mode.Kind)
}

func (s *Service) fromLatest(ctx context.Context) (*core.ResolvedStartHeight, error) {
	h, err := s.Finalized.GetFinalizedHeight(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get finalized height")
	}
	return &core.ResolvedStartHeight{Height: h, Source: core.StartSourceFinalized}, nil
}
