// Package store implements the engine's trade store over MongoDB and the
// upsert sink the sync job writes through.
package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tradewatch/models"
)

// Search pulls a few times the requested limit so the ranker has
// candidates to promote past the raw match order.
const searchCandidateFactor = 4

// MongoStore serves trade, trader and stock reference data from mongo.
type MongoStore struct {
	trades  *mongo.Collection
	traders *mongo.Collection
	stocks  *mongo.Collection
}

// NewMongoStore wires the store to its collections.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		trades:  db.Collection("trades"),
		traders: db.Collection("traders"),
		stocks:  db.Collection("stocks"),
	}
}

func (s *MongoStore) FindTrades(ctx context.Context, f models.TradeFilter, sort models.TradeSort, offset, limit int64) ([]models.Trade, error) {
	opts := options.Find().
		SetSort(tradeSortSpec(sort)).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := s.trades.Find(ctx, tradeQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trades []models.Trade
	if err := cursor.All(ctx, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *MongoStore) CountTrades(ctx context.Context, f models.TradeFilter) (int64, error) {
	return s.trades.CountDocuments(ctx, tradeQuery(f))
}

func (s *MongoStore) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	opts := options.Find().SetSort(bson.D{{Key: "transactionDate", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := s.trades.Find(ctx, bson.M{"traderId": traderID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trades []models.Trade
	if err := cursor.All(ctx, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *MongoStore) GetTrader(ctx context.Context, id string) (*models.Trader, error) {
	var trader models.Trader
	err := s.traders.FindOne(ctx, bson.M{"_id": id}).Decode(&trader)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trader, nil
}

func (s *MongoStore) TradersByID(ctx context.Context, ids []string) (map[string]models.Trader, error) {
	out := make(map[string]models.Trader, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := s.traders.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var trader models.Trader
		if err := cursor.Decode(&trader); err != nil {
			return nil, err
		}
		out[trader.ID] = trader
	}
	return out, cursor.Err()
}

func (s *MongoStore) GetStock(ctx context.Context, symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := s.stocks.FindOne(ctx, bson.M{"_id": symbol}).Decode(&stock)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (s *MongoStore) StocksBySymbol(ctx context.Context, symbols []string) (map[string]models.Stock, error) {
	out := make(map[string]models.Stock, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}
	cursor, err := s.stocks.Find(ctx, bson.M{"_id": bson.M{"$in": symbols}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var stock models.Stock
		if err := cursor.Decode(&stock); err != nil {
			return nil, err
		}
		out[stock.Symbol] = stock
	}
	return out, cursor.Err()
}

func (s *MongoStore) SearchTraders(ctx context.Context, query string, limit int64) ([]models.Trader, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"congressional.state": re},
		bson.M{"congressional.party": re},
		bson.M{"corporate.company": re},
		bson.M{"corporate.symbol": re},
	}}
	opts := options.Find().SetLimit(limit * searchCandidateFactor)
	cursor, err := s.traders.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var traders []models.Trader
	if err := cursor.All(ctx, &traders); err != nil {
		return nil, err
	}
	return traders, nil
}

func (s *MongoStore) SearchStocks(ctx context.Context, query string, limit int64) ([]models.Stock, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"_id": re},
		bson.M{"companyName": re},
	}}
	opts := options.Find().SetLimit(limit * searchCandidateFactor)
	cursor, err := s.stocks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stocks []models.Stock
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}
