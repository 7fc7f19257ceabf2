package services

import (
	"context"
	"time"

	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
	"github.com/stakeworks/staking-ledger/internal/types"
)

// SetInterestRate replaces the global rate. Existing stakes keep accruing at
// their snapshotted rate until their next settlement.
func (s *Service) SetInterestRate(ctx context.Context, caller string, newRate uint64) (*ledger.RateChange, error) {
	start := time.Now()
	change, err := s.ledger.SetInterestRate(ctx, caller, newRate)
	metrics.RecordOperationDuration(time.Since(start), "set_interest_rate", err != nil)
	if err != nil {
		return nil, err
	}

	s.persistState(ctx)
	s.emit(ctx, types.NewInterestRateChangedEvent(change.OldRate, change.NewRate))

	return change, nil
}

// AddTokens pulls owner funding into custody for the reward pool.
func (s *Service) AddTokens(ctx context.Context, caller string, amount uint64) error {
	start := time.Now()
	err := s.ledger.AddTokens(ctx, caller, amount)
	metrics.RecordOperationDuration(time.Since(start), "add_tokens", err != nil)
	if err != nil {
		return err
	}

	s.persistState(ctx)
	s.emit(ctx, types.NewTokensAddedEvent(amount))

	return nil
}

// EmergencyWithdraw reclaims the unconsumed portion of owner funding.
func (s *Service) EmergencyWithdraw(ctx context.Context, caller string) (uint64, error) {
	start := time.Now()
	amount, err := s.ledger.EmergencyWithdraw(ctx, caller)
	metrics.RecordOperationDuration(time.Since(start), "emergency_withdraw", err != nil)
	if err != nil {
		return 0, err
	}

	s.persistState(ctx)
	s.emit(ctx, types.NewEmergencyWithdrawEvent(amount))

	return amount, nil
}

func (s *Service) Pause(ctx context.Context, caller string) error {
	if err := s.ledger.Pause(ctx, caller); err != nil {
		return err
	}

	metrics.RecordPaused(true)
	s.persistState(ctx)
	return nil
}

func (s *Service) Unpause(ctx context.Context, caller string) error {
	if err := s.ledger.Unpause(ctx, caller); err != nil {
		return err
	}

	metrics.RecordPaused(false)
	s.persistState(ctx)
	return nil
}
