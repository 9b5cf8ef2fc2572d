package app

import (
	"time"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository"
)

type IndexerConfig struct {
	DB *repository.DB

	Stream StreamService

	FromBlock        core.ResolvedStartHeight
	FetchBlockPeriod time.Duration
	InsertBlockBatch int
}

type IndexerService interface {
	Start() error
	Stop()
}
