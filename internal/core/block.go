package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/nearindexer/arne/near"
)

type Block struct {
	ch.CHModel    `ch:"block_info,partition:author" json:"-"`
	bun.BaseModel `bun:"table:block_info" json:"-"`

	Height uint64 `ch:",pk" bun:",pk,notnull" json:"height"`

	Hash     near.CryptoHash `ch:"-" bun:"type:bytea,unique,notnull" json:"hash" swaggertype:"string"`
	PrevHash near.CryptoHash `ch:"-" bun:"type:bytea,notnull" json:"prev_hash" swaggertype:"string"`

	Author string `ch:",lc" bun:",notnull" json:"author"`

	// Timestamp is the block production time taken from the header,
	// ScannedAt is when this indexer stored the row.
	Timestamp time.Time `ch:",pk" bun:",notnull" json:"timestamp"`
	ScannedAt time.Time `bun:",notnull" json:"scanned_at"`

	ChunksCount uint64 `json:"chunks_count"`

	GasPrice    *bunbig.Int `ch:"-" bun:"type:numeric" json:"gas_price" swaggertype:"string"`
	TotalSupply *bunbig.Int `ch:"-" bun:"type:numeric" json:"total_supply" swaggertype:"string"`
}

type BlockFilter struct {
	Hash        *near.CryptoHash `form:"-"` // base58, parsed by the api layer
	Author      string           `form:"author"`
	AfterHeight uint64           `form:"after_height"`

	Sort  string `form:"sort"`  // height, timestamp, scanned_at
	Order string `form:"order"` // ASC, DESC
}

type BlockFiltered struct {
	Total int      `json:"total"`
	Rows  []*Block `json:"results"`
}

type BlockRepository interface {
	AddBlocks(ctx context.Context, blocks []*Block) error
	GetLastHeight(ctx context.Context) (uint64, error)
	GetLastBlock(ctx context.Context) (*Block, error)
	GetBlocks(ctx context.Context, filter *BlockFilter, offset, limit int) ([]*Block, error)
	CountBlocks(ctx context.Context) (int, error)
}
