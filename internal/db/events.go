package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeworks/staking-ledger/internal/db/model"
)

func (db *Database) InsertLedgerEvent(
	ctx context.Context, doc *model.LedgerEventDocument,
) error {
	_, err := db.collection(model.LedgerEventCollection).InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     doc.ID,
						Message: "ledger event already recorded",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetLedgerEventsByAccount(
	ctx context.Context, account string, limit int64,
) ([]model.LedgerEventDocument, error) {
	filter := bson.M{"account": account}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.LedgerEventCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.LedgerEventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
