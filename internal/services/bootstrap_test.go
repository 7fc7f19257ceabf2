package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/db"
	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/ledger"
	"github.com/stakeworks/staking-ledger/tests/mocks"
)

func bootstrapConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			OwnerAccount:           testOwner,
			InitialInterestRateBps: initialRate,
		},
	}
}

func TestRestoreLedger(t *testing.T) {
	ctx := t.Context()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}

	t.Run("fresh start seeds the state document", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		transferrer := mocks.NewTransferrer(t)

		dbClient.On("GetLedgerState", mock.Anything).
			Return(nil, &db.NotFoundError{Key: model.LedgerStateID, Message: "not found"}).Once()
		dbClient.On("UpsertLedgerState", mock.Anything, mock.MatchedBy(func(doc *model.LedgerStateDocument) bool {
			return doc.ID == model.LedgerStateID && doc.InterestRate == initialRate
		})).Return(nil).Once()

		guard, err := RestoreLedger(ctx, bootstrapConfig(), dbClient, transferrer, clock)
		require.NoError(t, err)
		assert.Equal(t, initialRate, guard.InterestRate())
		assert.Zero(t, guard.TotalStaked())
		assert.False(t, guard.Paused())
	})

	t.Run("failed seed write fails the bootstrap", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		transferrer := mocks.NewTransferrer(t)

		dbClient.On("GetLedgerState", mock.Anything).
			Return(nil, &db.NotFoundError{Message: "not found"}).Once()
		dbClient.On("UpsertLedgerState", mock.Anything, mock.Anything).
			Return(errors.New("mongo down")).Once()

		_, err := RestoreLedger(ctx, bootstrapConfig(), dbClient, transferrer, clock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seed ledger state")
	})

	t.Run("restores counters records and pause flag", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		transferrer := mocks.NewTransferrer(t)

		dbClient.On("GetLedgerState", mock.Anything).Return(&model.LedgerStateDocument{
			ID:                 model.LedgerStateID,
			InterestRate:       250,
			TotalStaked:        15000,
			TotalOwnerDeposits: 5000,
			TotalInterestPaid:  300,
			Paused:             true,
		}, nil).Once()
		dbClient.On("GetAllStakeRecords", mock.Anything).Return([]model.StakeRecordDocument{
			{Account: "alice", Amount: 10000, StartTime: 100, LastRewardTime: 100, RateAtStake: 100},
			{Account: "bob", Amount: 5000, StartTime: 200, LastRewardTime: 250, RateAtStake: 250},
		}, nil).Once()

		guard, err := RestoreLedger(ctx, bootstrapConfig(), dbClient, transferrer, clock)
		require.NoError(t, err)

		// the persisted rate wins over the config seed
		assert.Equal(t, uint64(250), guard.InterestRate())
		assert.Equal(t, uint64(15000), guard.TotalStaked())
		assert.Equal(t, uint64(5000), guard.PoolStatus().TotalOwnerDeposits)
		assert.Equal(t, uint64(300), guard.PoolStatus().TotalInterestPaid)
		assert.True(t, guard.Paused())

		rec := guard.Record("alice")
		assert.Equal(t, uint64(10000), rec.Amount)
		assert.Equal(t, int64(100), rec.LastRewardTime)
		assert.Equal(t, uint64(100), rec.RateAtStake)
		assert.Equal(t, uint64(5000), guard.StakedAmount("bob"))
	})

	t.Run("rejects an out of range initial rate", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		transferrer := mocks.NewTransferrer(t)

		cfg := bootstrapConfig()
		cfg.Ledger.InitialInterestRateBps = ledger.MaxInterestRateBps + 1

		_, err := RestoreLedger(ctx, cfg, dbClient, transferrer, clock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds the maximum")
	})

	t.Run("state load failure fails the bootstrap", func(t *testing.T) {
		dbClient := mocks.NewDbInterface(t)
		transferrer := mocks.NewTransferrer(t)

		dbClient.On("GetLedgerState", mock.Anything).
			Return(nil, errors.New("mongo down")).Once()

		_, err := RestoreLedger(ctx, bootstrapConfig(), dbClient, transferrer, clock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load ledger state")
	})
}
