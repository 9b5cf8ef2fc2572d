package rndm

import (
	"strconv"
	"time"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/near"
)

var (
	height uint64 = 100000
)

func Block() *core.Block {
	height++

	return &core.Block{
		Height:      height,
		Hash:        Hash(),
		PrevHash:    Hash(),
		Author:      AccountID(),
		Timestamp:   time.Now().UTC().Truncate(time.Second),
		ScannedAt:   time.Now().UTC().Truncate(time.Second),
		ChunksCount: 4,
		GasPrice:    BigInt(),
		TotalSupply: BigInt(),
	}
}

func Blocks(n int) (ret []*core.Block) {
	for i := 0; i < n; i++ {
		ret = append(ret, Block())
	}
	return ret
}

func BlockView(h uint64) *near.BlockView {
	return &near.BlockView{
		Author: AccountID(),
		Header: near.BlockHeaderView{
			Height:         h,
			Hash:           Hash(),
			PrevHash:       Hash(),
			ChunksIncluded: 4,
			Timestamp:      uint64(time.Now().UnixNano()),
			GasPrice:       strconv.FormatUint(100000000+h, 10),
			TotalSupply:    "1135382081256226857552814107268",
		},
		Chunks: []near.ChunkHeaderView{
			{ChunkHash: Hash(), ShardID: 0, HeightCreated: h, HeightIncluded: h},
			{ChunkHash: Hash(), ShardID: 1, HeightCreated: h, HeightIncluded: h},
			{ChunkHash: Hash(), ShardID: 2, HeightCreated: h, HeightIncluded: h},
			{ChunkHash: Hash(), ShardID: 3, HeightCreated: h, HeightIncluded: h},
		},
	}
}
