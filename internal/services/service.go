package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/db"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/internal/queue"
)

// Service orchestrates the staking core: it runs operations through the
// guarded ledger, mirrors committed state into the database, and publishes
// ledger events. The in-memory core is the source of truth; persistence and
// eventing are best-effort mirrors that are retried and counted, never
// allowed to veto a committed operation.
type Service struct {
	cfg    *config.Config
	ledger *ledger.Guard
	db     db.DbInterface
	events queue.EventPublisher
}

func NewService(
	cfg *config.Config,
	guardedLedger *ledger.Guard,
	db db.DbInterface,
	events queue.EventPublisher,
) *Service {
	return &Service{
		cfg:    cfg,
		ledger: guardedLedger,
		db:     db,
		events: events,
	}
}

func (s *Service) Ledger() *ledger.Guard {
	return s.ledger
}

func (s *Service) Shutdown(ctx context.Context) {
	s.events.Shutdown()
	if err := s.db.Shutdown(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to shut down db client")
	}
}
