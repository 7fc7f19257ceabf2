package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
	"github.com/stakeworks/staking-ledger/internal/types"
)

// Deposit stakes amount for the account, settling any pending reward first.
func (s *Service) Deposit(ctx context.Context, account string, amount uint64) (*ledger.DepositResult, error) {
	start := time.Now()
	result, err := s.ledger.Deposit(ctx, account, amount)
	metrics.RecordOperationDuration(time.Since(start), "deposit", err != nil)
	if err != nil {
		return nil, err
	}

	if result.RewardPaid > 0 {
		metrics.AddRewardPaid(result.RewardPaid)
	}

	s.persistAccount(ctx, account)
	s.persistState(ctx)
	s.emit(ctx, types.NewStakedEvent(account, amount))

	return result, nil
}

// Withdraw unstakes amount for the account. Pending reward is settled
// against the pre-decrease stake before the principal moves.
func (s *Service) Withdraw(ctx context.Context, account string, amount uint64) (*ledger.WithdrawResult, error) {
	start := time.Now()
	result, err := s.ledger.Withdraw(ctx, account, amount)
	metrics.RecordOperationDuration(time.Since(start), "withdraw", err != nil)
	if err != nil {
		return nil, err
	}

	if result.RewardPaid > 0 {
		metrics.AddRewardPaid(result.RewardPaid)
	}

	s.persistAccount(ctx, account)
	s.persistState(ctx)
	s.emit(ctx, types.NewUnstakedEvent(account, amount, result.RewardPaid))

	return result, nil
}

// ClaimReward settles the account's pending reward with no other change.
func (s *Service) ClaimReward(ctx context.Context, account string) (*ledger.ClaimResult, error) {
	start := time.Now()
	result, err := s.ledger.ClaimReward(ctx, account)
	metrics.RecordOperationDuration(time.Since(start), "claim_reward", err != nil)
	if err != nil {
		return nil, err
	}

	if result.RewardPaid > 0 {
		metrics.AddRewardPaid(result.RewardPaid)
	}

	s.persistAccount(ctx, account)
	s.persistState(ctx)
	s.emit(ctx, types.NewRewardClaimedEvent(account, result.RewardPaid))

	return result, nil
}

// persistAccount mirrors the committed stake record into the database.
// Best-effort: the core has already committed, so a failure here is logged
// and counted instead of failing the operation.
func (s *Service) persistAccount(ctx context.Context, account string) {
	rec := s.ledger.Record(account)
	doc := &model.StakeRecordDocument{
		Account:        account,
		Amount:         rec.Amount,
		StartTime:      rec.StartTime,
		LastRewardTime: rec.LastRewardTime,
		RateAtStake:    rec.RateAtStake,
		UpdatedAt:      time.Now().Unix(),
	}

	if err := s.db.UpsertStakeRecord(ctx, doc); err != nil {
		metrics.IncPersistenceErrors()
		log.Ctx(ctx).Error().
			Err(err).
			Str("account", account).
			Msg("Failed to persist stake record")
	}
}

func (s *Service) persistState(ctx context.Context) {
	snap := s.ledger.Snapshot()
	doc := &model.LedgerStateDocument{
		ID:                 model.LedgerStateID,
		InterestRate:       snap.InterestRate,
		TotalStaked:        snap.TotalStaked,
		TotalOwnerDeposits: snap.TotalOwnerDeposits,
		TotalInterestPaid:  snap.TotalInterestPaid,
		Paused:             s.ledger.Paused(),
	}

	if err := s.db.UpsertLedgerState(ctx, doc); err != nil {
		metrics.IncPersistenceErrors()
		log.Ctx(ctx).Error().Err(err).Msg("Failed to persist ledger state")
	}
}

// emit records the event in the audit trail and publishes it to the queue.
func (s *Service) emit(ctx context.Context, ev types.LedgerEvent) {
	if err := s.db.InsertLedgerEvent(ctx, model.FromLedgerEvent(&ev)); err != nil {
		metrics.IncPersistenceErrors()
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_id", ev.ID).
			Str("event_type", ev.Type.String()).
			Msg("Failed to record ledger event")
	}

	if err := s.events.PushLedgerEvent(ctx, &ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().
			Err(err).
			Str("event_id", ev.ID).
			Str("event_type", ev.Type.String()).
			Msg("Failed to publish ledger event")
	}
}
