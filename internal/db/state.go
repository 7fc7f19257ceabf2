package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeworks/staking-ledger/internal/db/model"
)

func (db *Database) UpsertLedgerState(
	ctx context.Context, doc *model.LedgerStateDocument,
) error {
	filter := bson.M{"_id": model.LedgerStateID}
	update := bson.M{
		"$set": bson.M{
			"interest_rate":        doc.InterestRate,
			"total_staked":         doc.TotalStaked,
			"total_owner_deposits": doc.TotalOwnerDeposits,
			"total_interest_paid":  doc.TotalInterestPaid,
			"paused":               doc.Paused,
			"last_updated":         time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.LedgerStateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error) {
	filter := bson.M{"_id": model.LedgerStateID}

	res := db.collection(model.LedgerStateCollection).FindOne(ctx, filter)
	var doc model.LedgerStateDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.LedgerStateID,
				Message: "ledger state has not been initialized",
			}
		}
		return nil, err
	}

	return &doc, nil
}
