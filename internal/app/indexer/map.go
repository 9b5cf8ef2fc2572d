package indexer

import (
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun/extra/bunbig"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/near"
)

func mapU128(s string) (*bunbig.Int, error) {
	if s == "" {
		return bunbig.NewInt(), nil
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("cannot parse '%s' as u128", s)
	}

	return bunbig.FromMathBig(v), nil
}

func mapBlock(v *near.BlockView) (*core.Block, error) {
	gasPrice, err := mapU128(v.Header.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "map gas price")
	}

	totalSupply, err := mapU128(v.Header.TotalSupply)
	if err != nil {
		return nil, errors.Wrap(err, "map total supply")
	}

	return &core.Block{
		Height:      v.Header.Height,
		Hash:        v.Header.Hash,
		PrevHash:    v.Header.PrevHash,
		Author:      v.Author,
		Timestamp:   time.Unix(0, int64(v.Header.Timestamp)).UTC(),
		ScannedAt:   time.Now().UTC(),
		ChunksCount: uint64(len(v.Chunks)),
		GasPrice:    gasPrice,
		TotalSupply: totalSupply,
	}, nil
}
