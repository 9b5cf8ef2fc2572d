package block_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/rndm"
)

func heights(blocks []*core.Block) (ret []uint64) {
	for _, b := range blocks {
		ret = append(ret, b.Height)
	}
	return
}

func TestRepository_GetBlocks(t *testing.T) {
	initdb(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	blocks := rndm.Blocks(100)
	first, last := blocks[0], blocks[len(blocks)-1]
	nextHeight := last.Height + 1

	t.Run("drop tables", func(t *testing.T) {
		dropTables(t)
	})

	t.Run("create tables", func(t *testing.T) {
		createTables(t)
	})

	t.Run("add blocks", func(t *testing.T) {
		require.Nil(t, repo.AddBlocks(ctx, blocks))
	})

	t.Run("filter by author", func(t *testing.T) {
		res, err := repo.GetBlocks(ctx, &core.BlockFilter{Author: last.Author}, 0, 10)
		require.Nil(t, err)
		require.Equal(t, []uint64{last.Height}, heights(res))
	})

	t.Run("filter by hash", func(t *testing.T) {
		res, err := repo.GetBlocks(ctx, &core.BlockFilter{Hash: &last.Hash}, 0, 10)
		require.Nil(t, err)
		require.Equal(t, []uint64{last.Height}, heights(res))
	})

	t.Run("after height descending", func(t *testing.T) {
		res, err := repo.GetBlocks(ctx, &core.BlockFilter{AfterHeight: nextHeight, Order: "DESC"}, 0, 1)
		require.Nil(t, err)
		require.Equal(t, []uint64{last.Height}, heights(res))
	})

	t.Run("after height ascending", func(t *testing.T) {
		res, err := repo.GetBlocks(ctx, &core.BlockFilter{AfterHeight: first.Height, Order: "ASC"}, 0, 2)
		require.Nil(t, err)
		require.Equal(t, []uint64{first.Height + 1, first.Height + 2}, heights(res))
	})

	t.Run("sort by scanned at", func(t *testing.T) {
		res, err := repo.GetBlocks(ctx, &core.BlockFilter{Sort: "scanned_at", Order: "ASC"}, 0, 1)
		require.Nil(t, err)
		require.Len(t, res, 1)
	})

	t.Run("count blocks", func(t *testing.T) {
		n, err := repo.CountBlocks(ctx)
		require.Nil(t, err)
		require.Equal(t, 100, n)
	})

	t.Run("drop tables again", func(t *testing.T) {
		dropTables(t)
	})
}
