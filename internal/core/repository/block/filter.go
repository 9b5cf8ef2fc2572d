package block

import (
	"context"
	"strings"

	"github.com/nearindexer/arne/internal/core"
)

func (r *Repository) filterBlocks(ctx context.Context, f *core.BlockFilter, offset, limit int) (ret []*core.Block, err error) {
	q := r.pg.NewSelect().Model(&ret)

	if f.Hash != nil {
		q = q.Where("hash = ?", f.Hash)
	}
	if f.Author != "" {
		q = q.Where("author = ?", f.Author)
	}

	order := strings.ToUpper(f.Order)
	if order != "ASC" {
		order = "DESC"
	}

	if f.AfterHeight > 0 {
		if order == "ASC" {
			q = q.Where("height > ?", f.AfterHeight)
		} else {
			q = q.Where("height < ?", f.AfterHeight)
		}
	}

	switch f.Sort {
	case "timestamp", "scanned_at":
		q = q.Order(f.Sort + " " + order)
	default:
		q = q.Order("height " + order)
	}

	if limit == 0 {
		limit = 3
	}
	q = q.Offset(offset).Limit(limit)

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	return ret, nil
}

func (r *Repository) GetBlocks(ctx context.Context, f *core.BlockFilter, offset, limit int) ([]*core.Block, error) {
	return r.filterBlocks(ctx, f, offset, limit)
}

// CountBlocks goes to the analytical mirror, row counts are what it is for.
func (r *Repository) CountBlocks(ctx context.Context) (int, error) {
	return r.ch.NewSelect().Model((*core.Block)(nil)).Count(ctx)
}
