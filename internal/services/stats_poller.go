package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
	"github.com/stakeworks/staking-ledger/internal/utils/poller"
)

// StartStatsPoller starts the stats polling service
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.snapshotAndPersistStats),
	)
	statsPoller.Start(ctx)
}

// snapshotAndPersistStats copies the ledger-wide totals into the stats
// collection and refreshes the prometheus gauges.
func (s *Service) snapshotAndPersistStats(ctx context.Context) error {
	snap := s.ledger.Snapshot()

	var activeAccounts uint64
	for _, rec := range snap.Records {
		if rec.Active() {
			activeAccounts++
		}
	}

	doc := &model.OverallStatsDocument{
		ID:                 "overall_stats",
		TotalStaked:        snap.TotalStaked,
		ActiveAccounts:     activeAccounts,
		TotalOwnerDeposits: snap.TotalOwnerDeposits,
		TotalInterestPaid:  snap.TotalInterestPaid,
		InterestRate:       snap.InterestRate,
	}
	if err := s.db.UpsertOverallStats(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert overall stats: %w", err)
	}

	metrics.RecordLedgerTotals(
		snap.TotalStaked,
		snap.TotalOwnerDeposits,
		snap.TotalInterestPaid,
		snap.InterestRate,
		activeAccounts,
	)
	metrics.RecordPaused(s.ledger.Paused())

	log.Ctx(ctx).Debug().
		Uint64("total_staked", snap.TotalStaked).
		Uint64("active_accounts", activeAccounts).
		Msg("Updated overall stats")

	return nil
}
