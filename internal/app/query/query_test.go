package query

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/near"
)

type blockRepoStub struct {
	lastHeight    uint64
	lastHeightErr error
}

func (r *blockRepoStub) AddBlocks(context.Context, []*core.Block) error { return nil }

func (r *blockRepoStub) GetLastHeight(context.Context) (uint64, error) {
	return r.lastHeight, r.lastHeightErr
}

func (r *blockRepoStub) GetLastBlock(context.Context) (*core.Block, error) {
	return nil, core.ErrNotFound
}

func (r *blockRepoStub) GetBlocks(context.Context, *core.BlockFilter, int, int) ([]*core.Block, error) {
	return nil, nil
}

func (r *blockRepoStub) CountBlocks(context.Context) (int, error) { return 0, nil }

type finalizedStub struct {
	height uint64
	err    error
}

func (f *finalizedStub) GetFinalizedHeight(context.Context) (uint64, error) {
	return f.height, f.err
}

func newTestService(repo core.BlockRepository, fin app.FinalizedHeightSource) *Service {
	return &Service{
		cfg:       &app.QueryConfig{ChainID: near.Mainnet, Finalized: fin},
		blockRepo: repo,
	}
}

func TestService_GetStatus(t *testing.T) {
	t.Run("reports lag between indexed and finalized", func(t *testing.T) {
		s := newTestService(&blockRepoStub{lastHeight: 9820200}, &finalizedStub{height: 9820210})

		status, err := s.GetStatus(context.Background())
		require.Nil(t, err)
		assert.Equal(t, "mainnet", status.ChainID)
		assert.Equal(t, uint64(9820200), status.IndexedHeight)
		assert.Equal(t, uint64(9820210), status.FinalizedHeight)
		assert.Equal(t, uint64(10), status.Lag)
	})

	t.Run("empty store reports zero indexed height", func(t *testing.T) {
		s := newTestService(&blockRepoStub{lastHeightErr: core.ErrNotFound}, &finalizedStub{height: 42})

		status, err := s.GetStatus(context.Background())
		require.Nil(t, err)
		assert.Equal(t, uint64(0), status.IndexedHeight)
		assert.Equal(t, uint64(42), status.Lag)
	})

	t.Run("indexer ahead of rpc clamps lag to zero", func(t *testing.T) {
		s := newTestService(&blockRepoStub{lastHeight: 100}, &finalizedStub{height: 90})

		status, err := s.GetStatus(context.Background())
		require.Nil(t, err)
		assert.Equal(t, uint64(0), status.Lag)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		s := newTestService(&blockRepoStub{lastHeightErr: errors.New("pg down")}, &finalizedStub{height: 1})

		_, err := s.GetStatus(context.Background())
		assert.NotNil(t, err)
	})

	t.Run("rpc failure is returned", func(t *testing.T) {
		s := newTestService(&blockRepoStub{lastHeight: 1}, &finalizedStub{err: errors.New("rpc down")})

		_, err := s.GetStatus(context.Background())
		assert.NotNil(t, err)
	})
}
