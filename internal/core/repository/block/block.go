package block

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/nearindexer/arne/internal/core"
)

var _ core.BlockRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func createIndexes(ctx context.Context, pgDB *bun.DB) error {
	_, err := pgDB.NewCreateIndex().
		Model(&core.Block{}).
		Using("HASH").
		Column("author").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block author pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Block{}).
		Column("timestamp").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block timestamp pg create index")
	}

	return nil
}

func CreateTables(ctx context.Context, chDB *ch.DB, pgDB *bun.DB) error {
	_, err := chDB.NewCreateTable().
		IfNotExists().
		Engine("ReplacingMergeTree").
		Model(&core.Block{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block info ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Block{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block info pg create table")
	}

	return createIndexes(ctx, pgDB)
}

// AddBlocks tolerates heights that are already stored, as a resumed run
// re-indexes the block it was interrupted on.
func (r *Repository) AddBlocks(ctx context.Context, blocks []*core.Block) error {
	if len(blocks) == 0 {
		return nil
	}

	_, err := r.ch.NewInsert().Model(&blocks).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "ch insert blocks")
	}

	_, err = r.pg.NewInsert().Model(&blocks).
		On("CONFLICT (height) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "pg insert blocks")
	}

	return nil
}

func (r *Repository) GetLastBlock(ctx context.Context) (*core.Block, error) {
	ret := new(core.Block)

	err := r.pg.NewSelect().Model(ret).
		Order("height DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return ret, nil
}

// GetLastHeight is what a restarted indexer asks first. One query, no
// retries; an empty table maps to core.ErrNotFound, anything else means
// the store itself is unavailable.
func (r *Repository) GetLastHeight(ctx context.Context) (uint64, error) {
	b, err := r.GetLastBlock(ctx)
	if err != nil {
		return 0, err
	}
	return b.Height, nil
}
