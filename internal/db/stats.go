package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeworks/staking-ledger/internal/db/model"
)

// UpsertOverallStats updates or inserts the ledger-wide stats snapshot
func (db *Database) UpsertOverallStats(
	ctx context.Context, doc *model.OverallStatsDocument,
) error {
	filter := bson.M{"_id": "overall_stats"}
	update := bson.M{
		"$set": bson.M{
			"total_staked":         doc.TotalStaked,
			"active_accounts":      doc.ActiveAccounts,
			"total_owner_deposits": doc.TotalOwnerDeposits,
			"total_interest_paid":  doc.TotalInterestPaid,
			"interest_rate":        doc.InterestRate,
			"last_updated":         time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.OverallStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
