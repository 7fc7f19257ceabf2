package db

import (
	"context"

	"github.com/stakeworks/staking-ledger/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	Shutdown(ctx context.Context) error

	UpsertStakeRecord(ctx context.Context, doc *model.StakeRecordDocument) error
	GetStakeRecord(ctx context.Context, account string) (*model.StakeRecordDocument, error)
	GetAllStakeRecords(ctx context.Context) ([]model.StakeRecordDocument, error)

	UpsertLedgerState(ctx context.Context, doc *model.LedgerStateDocument) error
	GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error)

	InsertLedgerEvent(ctx context.Context, doc *model.LedgerEventDocument) error
	GetLedgerEventsByAccount(ctx context.Context, account string, limit int64) ([]model.LedgerEventDocument, error)

	UpsertOverallStats(ctx context.Context, doc *model.OverallStatsDocument) error
}
