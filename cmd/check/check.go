package check

import (
	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/nearindexer/arne/internal/app"
	"github.com/nearindexer/arne/internal/app/stream"
	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/internal/core/repository"
	"github.com/nearindexer/arne/internal/core/repository/block"
	"github.com/nearindexer/arne/internal/lake"
	"github.com/nearindexer/arne/internal/rpc"
	"github.com/nearindexer/arne/near"
)

var Command = &cli.Command{
	Name:  "check",
	Usage: "Probes the chain RPC, the lake bucket and the databases",

	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "testnet",
			Aliases: []string{"t"},
			Value:   false,
			Usage:   "use testnet",
		},
	},

	Action: func(ctx *cli.Context) error {
		chainID := near.Mainnet
		if ctx.Bool("testnet") {
			chainID = near.Testnet
		}

		client := rpc.NewClient(env.GetString("RPC_URL", chainID.RPCURL()))

		finalized, err := client.GetFinalizedHeight(ctx.Context)
		if err != nil {
			log.Error().Err(err).Str("chain_id", chainID.String()).Msg("rpc is not reachable")
		} else {
			log.Info().Uint64("finalized_height", finalized).Msg("rpc is reachable")
		}

		lakeCfg := &lake.Config{
			ChainID:         chainID,
			AccessKeyID:     env.GetString("LAKE_AWS_ACCESS_KEY", ""),
			SecretAccessKey: env.GetString("LAKE_AWS_SECRET_ACCESS_KEY", ""),
			Bucket:          env.GetString("LAKE_S3_BUCKET", ""),
			Region:          env.GetString("LAKE_S3_REGION", ""),
			Endpoint:        env.GetString("LAKE_S3_ENDPOINT", ""),
		}

		heights, err := stream.NewService(&app.StreamConfig{Lake: lakeCfg}).
			ListHeights(ctx.Context, finalized, 1)
		if err != nil {
			log.Error().Err(err).Str("bucket", lakeCfg.BucketName()).Msg("lake bucket is not readable")
		} else {
			log.Info().Str("bucket", lakeCfg.BucketName()).Int("heights", len(heights)).Msg("lake bucket is readable")
		}

		chURL := env.GetString("DB_CH_URL", "")
		pgURL := env.GetString("DB_PG_URL", "")

		conn, err := repository.ConnectDB(ctx.Context, chURL, pgURL)
		if err != nil {
			log.Error().Err(err).Msg("cannot connect to a database")
			return nil
		}
		defer conn.Close()

		last, err := block.NewRepository(conn.CH, conn.PG).GetLastHeight(ctx.Context)
		switch {
		case errors.Is(err, core.ErrNotFound):
			log.Info().Msg("no blocks indexed so far")
		case err != nil:
			log.Error().Err(err).Msg("cannot get last indexed height")
		case finalized > last:
			log.Info().Uint64("last_height", last).Uint64("lag", finalized-last).Msg("last indexed block")
		default:
			log.Info().Uint64("last_height", last).Msg("last indexed block")
		}

		return nil
	},
}
