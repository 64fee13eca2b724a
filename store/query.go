package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"tradewatch/models"
)

// tradeQuery translates a validated filter into its mongo form. The
// predicates mirror models.TradeFilter.Matches exactly: inclusive date
// and value ranges, exact match on type, symbol and trader id.
func tradeQuery(f models.TradeFilter) bson.M {
	q := bson.M{}
	if f.StartDate != nil || f.EndDate != nil {
		r := bson.M{}
		if f.StartDate != nil {
			r["$gte"] = f.StartDate.Time
		}
		if f.EndDate != nil {
			r["$lte"] = f.EndDate.Time
		}
		q["transactionDate"] = r
	}
	if f.TransactionType != nil {
		q["transactionType"] = *f.TransactionType
	}
	if f.MinValue != nil || f.MaxValue != nil {
		r := bson.M{}
		if f.MinValue != nil {
			r["$gte"] = *f.MinValue
		}
		if f.MaxValue != nil {
			r["$lte"] = *f.MaxValue
		}
		q["estimatedValue"] = r
	}
	if f.Symbol != "" {
		q["symbol"] = f.Symbol
	}
	if f.TraderID != "" {
		q["traderId"] = f.TraderID
	}
	return q
}

// tradeSortSpec builds the compound sort: the requested field plus the
// trade id as tie-break so pagination is deterministic on unchanged data.
func tradeSortSpec(s models.TradeSort) bson.D {
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{
		{Key: string(s.Field), Value: dir},
		{Key: "_id", Value: 1},
	}
}
