package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/db"
	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/token"
)

// RestoreLedger rebuilds the guarded staking core from persisted state. On
// first run (no state document) the ledger is seeded from config and the
// initial state document is written, so a later restart always restores.
func RestoreLedger(
	ctx context.Context,
	cfg *config.Config,
	database db.DbInterface,
	transferrer token.Transferrer,
	clock ledger.Clock,
) (*ledger.Guard, error) {
	if cfg.Ledger.InitialInterestRateBps > ledger.MaxInterestRateBps {
		return nil, fmt.Errorf(
			"initial interest rate %d exceeds the maximum of %d basis points",
			cfg.Ledger.InitialInterestRateBps, ledger.MaxInterestRateBps,
		)
	}

	params := ledger.Params{
		Owner:          cfg.Ledger.OwnerAccount,
		InitialRateBps: cfg.Ledger.InitialInterestRateBps,
	}

	state, err := database.GetLedgerState(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load ledger state: %w", err)
		}

		core := ledger.New(params, transferrer, clock)
		guard := ledger.NewGuard(core)

		if err := database.UpsertLedgerState(ctx, &model.LedgerStateDocument{
			ID:           model.LedgerStateID,
			InterestRate: cfg.Ledger.InitialInterestRateBps,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed ledger state: %w", err)
		}

		log.Ctx(ctx).Info().
			Uint64("interest_rate_bps", cfg.Ledger.InitialInterestRateBps).
			Msg("Initialized fresh ledger from config")
		return guard, nil
	}

	records, err := database.GetAllStakeRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stake records: %w", err)
	}

	snap := ledger.Snapshot{
		InterestRate:       state.InterestRate,
		TotalStaked:        state.TotalStaked,
		TotalOwnerDeposits: state.TotalOwnerDeposits,
		TotalInterestPaid:  state.TotalInterestPaid,
		Records:            make(map[string]ledger.StakeRecord, len(records)),
	}
	for _, doc := range records {
		snap.Records[doc.Account] = ledger.StakeRecord{
			Amount:         doc.Amount,
			StartTime:      doc.StartTime,
			LastRewardTime: doc.LastRewardTime,
			RateAtStake:    doc.RateAtStake,
		}
	}

	core := ledger.Restore(params, transferrer, clock, snap)
	guard := ledger.NewGuard(core)
	guard.RestorePaused(state.Paused)

	log.Ctx(ctx).Info().
		Int("stake_records", len(records)).
		Uint64("total_staked", state.TotalStaked).
		Bool("paused", state.Paused).
		Msg("Restored ledger from persisted state")

	return guard, nil
}
