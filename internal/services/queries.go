package services

import (
	"context"

	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/ledger"
)

func (s *Service) StakedAmount(account string) uint64 {
	return s.ledger.StakedAmount(account)
}

func (s *Service) RewardsEarned(account string) uint64 {
	return s.ledger.RewardsEarned(account)
}

func (s *Service) StakeRecord(account string) ledger.StakeRecord {
	return s.ledger.Record(account)
}

func (s *Service) InterestRate() uint64 {
	return s.ledger.InterestRate()
}

func (s *Service) TotalStaked() uint64 {
	return s.ledger.TotalStaked()
}

func (s *Service) PoolStatus() ledger.PoolStatus {
	return s.ledger.PoolStatus()
}

func (s *Service) Paused() bool {
	return s.ledger.Paused()
}

func (s *Service) AccountEvents(ctx context.Context, account string, limit int64) ([]model.LedgerEventDocument, error) {
	return s.db.GetLedgerEventsByAccount(ctx, account, limit)
}
