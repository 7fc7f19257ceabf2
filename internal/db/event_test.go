//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeworks/staking-ledger/internal/db"
	"github.com/stakeworks/staking-ledger/internal/db/model"
	"github.com/stakeworks/staking-ledger/internal/types"
	"github.com/stakeworks/staking-ledger/testutil"
)

func TestLedgerEvents(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("insert and duplicate key", func(t *testing.T) {
		ev := types.NewStakedEvent(testutil.RandomAccount(), 10000)
		doc := model.FromLedgerEvent(&ev)

		require.NoError(t, testDB.InsertLedgerEvent(ctx, doc))

		err := testDB.InsertLedgerEvent(ctx, doc)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("get by account sorted and limited", func(t *testing.T) {
		account := testutil.RandomAccount()

		var inserted []model.LedgerEventDocument
		for i := 0; i < 5; i++ {
			ev := types.NewStakedEvent(account, uint64(100*(i+1)))
			ev.Timestamp = int64(1000 + i)
			doc := model.FromLedgerEvent(&ev)
			require.NoError(t, testDB.InsertLedgerEvent(ctx, doc))
			inserted = append(inserted, *doc)
		}

		// newest first
		events, err := testDB.GetLedgerEventsByAccount(ctx, account, 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, inserted[4], events[0])
		assert.Equal(t, inserted[3], events[1])
		assert.Equal(t, inserted[2], events[2])

		// another account's trail is untouched
		events, err = testDB.GetLedgerEventsByAccount(ctx, testutil.RandomAccount(), 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
