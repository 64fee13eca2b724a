package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"tradewatch/models"
)

func fptr(v float64) *float64 { return &v }

func TestTradeQueryEmptyFilter(t *testing.T) {
	q := tradeQuery(models.TradeFilter{Page: 1, Limit: 20})
	assert.Empty(t, q, "no predicates means match everything")
}

func TestTradeQueryConjunction(t *testing.T) {
	start, err := models.ParseDate("2024-01-01")
	require.NoError(t, err)
	end, err := models.ParseDate("2024-06-30")
	require.NoError(t, err)
	tt := models.TransactionBuy

	f := models.TradeFilter{
		StartDate:       &start,
		EndDate:         &end,
		TransactionType: &tt,
		MinValue:        fptr(1000),
		MaxValue:        fptr(50000),
		Symbol:          "AAPL",
		TraderID:        "3c7f4b7e-5a52-4b62-9a1f-0f8f6a2b9c11",
		Page:            1,
		Limit:           20,
	}
	q := tradeQuery(f)

	require.Len(t, q, 5)
	assert.Equal(t, bson.M{"$gte": start.Time, "$lte": end.Time}, q["transactionDate"])
	assert.Equal(t, models.TransactionBuy, q["transactionType"])
	assert.Equal(t, bson.M{"$gte": 1000.0, "$lte": 50000.0}, q["estimatedValue"])
	assert.Equal(t, "AAPL", q["symbol"])
	assert.Equal(t, "3c7f4b7e-5a52-4b62-9a1f-0f8f6a2b9c11", q["traderId"])
}

func TestTradeQueryOpenEndedRanges(t *testing.T) {
	start, err := models.ParseDate("2024-01-01")
	require.NoError(t, err)

	q := tradeQuery(models.TradeFilter{StartDate: &start, MinValue: fptr(500), Page: 1, Limit: 20})
	assert.Equal(t, bson.M{"$gte": start.Time}, q["transactionDate"])
	assert.Equal(t, bson.M{"$gte": 500.0}, q["estimatedValue"])
}

func TestTradeSortSpecTieBreak(t *testing.T) {
	doc := tradeSortSpec(models.DefaultTradeSort())
	require.Len(t, doc, 2)
	assert.Equal(t, "transactionDate", doc[0].Key)
	assert.Equal(t, -1, doc[0].Value)
	assert.Equal(t, "_id", doc[1].Key)
	assert.Equal(t, 1, doc[1].Value)

	doc = tradeSortSpec(models.TradeSort{Field: models.SortBySymbol, Descending: false})
	assert.Equal(t, "symbol", doc[0].Key)
	assert.Equal(t, 1, doc[0].Value)
}
