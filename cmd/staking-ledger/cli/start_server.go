package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/stakeworks/staking-ledger/internal/api"
	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/db"
	dbmodel "github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
	"github.com/stakeworks/staking-ledger/internal/observability/tracing"
	"github.com/stakeworks/staking-ledger/internal/queue"
	"github.com/stakeworks/staking-ledger/internal/services"
	"github.com/stakeworks/staking-ledger/internal/token"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	queueManager, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}

	bridgeClient := token.NewBridgeClient(&cfg.Token)

	guardedLedger, err := services.RestoreLedger(ctx, cfg, dbClient, bridgeClient, ledger.SystemClock())
	if err != nil {
		log.Fatal().Err(err).Msg("error while restoring ledger state")
	}

	service := services.NewService(cfg, guardedLedger, dbClient, queueManager)
	apiServer := api.New(&cfg.Api, service)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	var wg conc.WaitGroup
	wg.Go(func() {
		service.StartStatsPoller(ctx)
	})
	wg.Go(func() {
		if err := apiServer.Start(); err != nil {
			log.Fatal().Err(err).Msg("ledger API server failed")
		}
	})
	wg.Wait()

	service.Shutdown(ctx)
	return nil
}
