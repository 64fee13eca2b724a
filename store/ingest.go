package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tradewatch/models"
)

// The sync job is the sole writer of reference data; everything below is
// upsert-only so re-ingesting a feed batch is idempotent.

func (s *MongoStore) UpsertTrades(ctx context.Context, trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	ops := make([]mongo.WriteModel, 0, len(trades))
	for _, t := range trades {
		ops = append(ops, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": t.ID}).
			SetReplacement(t).
			SetUpsert(true))
	}
	_, err := s.trades.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}

func (s *MongoStore) UpsertTraders(ctx context.Context, traders []models.Trader) error {
	if len(traders) == 0 {
		return nil
	}
	ops := make([]mongo.WriteModel, 0, len(traders))
	for _, tr := range traders {
		ops = append(ops, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": tr.ID}).
			SetReplacement(tr).
			SetUpsert(true))
	}
	_, err := s.traders.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}

func (s *MongoStore) UpsertStocks(ctx context.Context, stocks []models.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	ops := make([]mongo.WriteModel, 0, len(stocks))
	for _, st := range stocks {
		ops = append(ops, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": st.Symbol}).
			SetReplacement(st).
			SetUpsert(true))
	}
	_, err := s.stocks.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}
