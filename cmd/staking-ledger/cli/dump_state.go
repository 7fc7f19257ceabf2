package cli

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/db"
)

func DumpStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-state",
		Short: "Prints the persisted ledger state and all stake records",
		Run:   dumpState,
	}

	cmd.Flags().Int64("events", 0, "Also dump up to N recent events per account")

	return cmd
}

func dumpState(cmd *cobra.Command, args []string) {
	if err := dumpStateE(cmd, args); err != nil {
		log.Err(err).Msg("Failed to dump ledger state")
		os.Exit(1)
	}

	os.Exit(0)
}

func dumpStateE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Shutdown(ctx); err != nil {
			log.Err(err).Msg("Failed to shut down db client")
		}
	}()

	state, err := dbClient.GetLedgerState(ctx)
	if err != nil && !db.IsNotFoundError(err) {
		return err
	}
	spew.Dump(state)

	records, err := dbClient.GetAllStakeRecords(ctx)
	if err != nil {
		return err
	}
	spew.Dump(records)

	eventsLimit, err := cmd.Flags().GetInt64("events")
	if err != nil {
		return err
	}
	if eventsLimit <= 0 {
		return nil
	}

	for _, rec := range records {
		events, err := dbClient.GetLedgerEventsByAccount(ctx, rec.Account, eventsLimit)
		if err != nil {
			return err
		}
		spew.Dump(events)
	}

	return nil
}
