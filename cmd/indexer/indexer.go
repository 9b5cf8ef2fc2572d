package indexer

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/app/indexer"
	"github.com/nearindexer/arne/internal/app/resolver"
	"github.com/nearindexer/arne/internal/app/stream"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository"
	"github.com/nearindexer/arne/internal/core/repository/block"
	"github.com/nearindexer/arne/internal/lake"
	"github.com/nearindexer/arne/internal/rpc"
	"github.com/nearindexer/arne/near"
)

var Command = &cli.Command{
	Name:    "indexer",
	Aliases: []string{"idx"},
	Usage:   "Scans new blocks",

	Action: func(ctx *cli.Context) error {
		return run(ctx, core.StartFromInterruption())
	},

	Subcommands: cli.Commands{
		{
			Name:      "from-height",
			Usage:     "Starts from the given height, touching neither the store nor the chain",
			ArgsUsage: "height",
			Action: func(ctx *cli.Context) error {
				h, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
				if err != nil {
					return errors.Wrapf(err, "cannot parse height '%s'", ctx.Args().First())
				}
				return run(ctx, core.StartFromHeight(h))
			},
		},
		{
			Name:  "from-interruption",
			Usage: "Resumes from the last indexed block, falling back to the latest final one",
			Action: func(ctx *cli.Context) error {
				return run(ctx, core.StartFromInterruption())
			},
		},
		{
			Name:  "from-latest",
			Usage: "Starts from the latest final block on the chain",
			Action: func(ctx *cli.Context) error {
				return run(ctx, core.StartFromLatest())
			},
		},
	},
}

func run(ctx *cli.Context, mode core.StartMode) error {
	chainID, err := near.ParseChainID(env.GetString("CHAIN_ID", "mainnet"))
	if err != nil {
		return err
	}

	chURL := env.GetString("DB_CH_URL", "")
	pgURL := env.GetString("DB_PG_URL", "")

	conn, err := repository.ConnectDB(ctx.Context, chURL, pgURL)
	if err != nil {
		return errors.Wrap(err, "cannot connect to a database")
	}

	client := rpc.NewClient(env.GetString("RPC_URL", chainID.RPCURL()))

	fromBlock, err := resolver.NewService(&app.ResolverConfig{
		Persisted: block.NewRepository(conn.CH, conn.PG),
		Finalized: client,
	}).ResolveStartHeight(ctx.Context, mode)
	if err != nil {
		return errors.Wrap(err, "cannot resolve start height")
	}

	str := stream.NewService(&app.StreamConfig{
		Lake: &lake.Config{
			ChainID:          chainID,
			AccessKeyID:      env.GetString("LAKE_AWS_ACCESS_KEY", ""),
			SecretAccessKey:  env.GetString("LAKE_AWS_SECRET_ACCESS_KEY", ""),
			Bucket:           env.GetString("LAKE_S3_BUCKET", ""),
			Region:           env.GetString("LAKE_S3_REGION", ""),
			Endpoint:         env.GetString("LAKE_S3_ENDPOINT", ""),
			StartBlockHeight: fromBlock.Height,
		},
	})

	i := indexer.NewService(&app.IndexerConfig{
		DB:               conn,
		Stream:           str,
		FromBlock:        *fromBlock,
		FetchBlockPeriod: time.Duration(env.GetInt32("FETCH_PERIOD", 2)) * time.Second,
		InsertBlockBatch: int(env.GetInt32("INSERT_BLOCK_BATCH", 10)),
	})

	if err = i.Start(); err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	done := make(chan struct{}, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		i.Stop()
		conn.Close()
		done <- struct{}{}
	}()

	<-done

	return nil
}
