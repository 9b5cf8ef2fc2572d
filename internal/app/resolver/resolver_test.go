package resolver_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/app/resolver"
	"github.com/nearindexer/arne/internal/core"
)

type persistedStub struct {
	height uint64
	err    error
	calls  int
}

func (s *persistedStub) GetLastHeight(_ context.Context) (uint64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.height, nil
}

type finalizedStub struct {
	height uint64
	err    error
	calls  int
}

func (s *finalizedStub) GetFinalizedHeight(_ context.Context) (uint64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.height, nil
}

func newService(p *persistedStub, f *finalizedStub) *resolver.Service {
	return resolver.NewService(&app.ResolverConfig{Persisted: p, Finalized: f})
}

func captureLog(t *testing.T) *strings.Builder {
	buf := new(strings.Builder)
	prev := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = prev })
	return buf
}

func warnings(buf *strings.Builder) int {
	return strings.Count(buf.String(), `"level":"warn"`)
}

func TestResolve_FromHeight(t *testing.T) {
	p, f := new(persistedStub), new(finalizedStub)

	got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromHeight(9820210))
	require.Nil(t, err)

	assert.Equal(t, &core.ResolvedStartHeight{Height: 9820210, Source: core.StartSourceExplicit}, got)
	assert.Equal(t, 0, p.calls)
	assert.Equal(t, 0, f.calls)
}

func TestResolve_FromInterruption(t *testing.T) {
	t.Run("persisted height found", func(t *testing.T) {
		buf := captureLog(t)

		p, f := &persistedStub{height: 100}, &finalizedStub{height: 500}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromInterruption())
		require.Nil(t, err)

		assert.Equal(t, &core.ResolvedStartHeight{Height: 100, Source: core.StartSourcePersisted}, got)
		assert.Equal(t, 1, p.calls)
		assert.Equal(t, 0, f.calls)
		assert.Equal(t, 0, warnings(buf))
	})

	t.Run("no prior record", func(t *testing.T) {
		buf := captureLog(t)

		p, f := &persistedStub{err: core.ErrNotFound}, &finalizedStub{height: 500}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromInterruption())
		require.Nil(t, err)

		assert.Equal(t, &core.ResolvedStartHeight{Height: 500, Source: core.StartSourceFinalized}, got)
		assert.Equal(t, 0, warnings(buf))
	})

	t.Run("store unavailable", func(t *testing.T) {
		buf := captureLog(t)

		p, f := &persistedStub{err: errors.New("connection refused")}, &finalizedStub{height: 500}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromInterruption())
		require.Nil(t, err)

		assert.Equal(t, &core.ResolvedStartHeight{Height: 500, Source: core.StartSourceFinalized}, got)
		assert.Equal(t, 1, warnings(buf))
	})

	t.Run("store and node both down", func(t *testing.T) {
		captureLog(t)

		p := &persistedStub{err: errors.New("connection refused")}
		f := &finalizedStub{err: core.ErrNotAvailable}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromInterruption())
		require.NotNil(t, err)
		require.Nil(t, got)
	})
}

func TestResolve_FromLatest(t *testing.T) {
	t.Run("finalized height", func(t *testing.T) {
		p, f := new(persistedStub), &finalizedStub{height: 777}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromLatest())
		require.Nil(t, err)

		assert.Equal(t, &core.ResolvedStartHeight{Height: 777, Source: core.StartSourceFinalized}, got)
		assert.Equal(t, 0, p.calls)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("node unreachable", func(t *testing.T) {
		p, f := new(persistedStub), &finalizedStub{err: core.ErrNotAvailable}

		got, err := newService(p, f).ResolveStartHeight(context.Background(), core.StartFromLatest())
		require.NotNil(t, err)
		require.Nil(t, got)
		assert.Equal(t, 0, p.calls)
	})
}

func TestResolve_Idempotent(t *testing.T) {
	p, f := &persistedStub{height: 42}, &finalizedStub{height: 999}
	svc := newService(p, f)

	first, err := svc.ResolveStartHeight(context.Background(), core.StartFromInterruption())
	require.Nil(t, err)

	second, err := svc.ResolveStartHeight(context.Background(), core.StartFromInterruption())
	require.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, 0, f.calls)
}
