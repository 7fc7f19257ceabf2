package db

import (
	"context"
	"time"

	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) Shutdown(ctx context.Context) error {
	return d.db.Shutdown(ctx)
}

func (d *DbWithMetrics) UpsertStakeRecord(ctx context.Context, doc *model.StakeRecordDocument) error {
	return d.run("UpsertStakeRecord", func() error {
		return d.db.UpsertStakeRecord(ctx, doc)
	})
}

func (d *DbWithMetrics) GetStakeRecord(ctx context.Context, account string) (result *model.StakeRecordDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeRecord", func() error {
		result, err = d.db.GetStakeRecord(ctx, account)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllStakeRecords(ctx context.Context) (result []model.StakeRecordDocument, err error) {
	//nolint:errcheck
	d.run("GetAllStakeRecords", func() error {
		result, err = d.db.GetAllStakeRecords(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertLedgerState(ctx context.Context, doc *model.LedgerStateDocument) error {
	return d.run("UpsertLedgerState", func() error {
		return d.db.UpsertLedgerState(ctx, doc)
	})
}

func (d *DbWithMetrics) GetLedgerState(ctx context.Context) (result *model.LedgerStateDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerState", func() error {
		result, err = d.db.GetLedgerState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) InsertLedgerEvent(ctx context.Context, doc *model.LedgerEventDocument) error {
	return d.run("InsertLedgerEvent", func() error {
		return d.db.InsertLedgerEvent(ctx, doc)
	})
}

func (d *DbWithMetrics) GetLedgerEventsByAccount(ctx context.Context, account string, limit int64) (result []model.LedgerEventDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerEventsByAccount", func() error {
		result, err = d.db.GetLedgerEventsByAccount(ctx, account, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertOverallStats(ctx context.Context, doc *model.OverallStatsDocument) error {
	return d.run("UpsertOverallStats", func() error {
		return d.db.UpsertOverallStats(ctx, doc)
	})
}

// run executes f recording its latency and outcome under the given method name
func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}
