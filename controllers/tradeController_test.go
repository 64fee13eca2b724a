package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewatch/engine"
	"tradewatch/models"
)

// stubStore serves canned data so the handlers can be exercised over HTTP.
type stubStore struct {
	trades []models.Trade
	trader *models.Trader
	err    error
}

func (s *stubStore) FindTrades(ctx context.Context, f models.TradeFilter, sort models.TradeSort, offset, limit int64) ([]models.Trade, error) {
	return s.trades, s.err
}

func (s *stubStore) CountTrades(ctx context.Context, f models.TradeFilter) (int64, error) {
	return int64(len(s.trades)), s.err
}

func (s *stubStore) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	return s.trades, s.err
}

func (s *stubStore) GetTrader(ctx context.Context, id string) (*models.Trader, error) {
	return s.trader, s.err
}

func (s *stubStore) TradersByID(ctx context.Context, ids []string) (map[string]models.Trader, error) {
	return map[string]models.Trader{}, s.err
}

func (s *stubStore) GetStock(ctx context.Context, symbol string) (*models.Stock, error) {
	return nil, s.err
}

func (s *stubStore) StocksBySymbol(ctx context.Context, symbols []string) (map[string]models.Stock, error) {
	return map[string]models.Stock{}, s.err
}

func (s *stubStore) SearchTraders(ctx context.Context, query string, limit int64) ([]models.Trader, error) {
	return nil, s.err
}

func (s *stubStore) SearchStocks(ctx context.Context, query string, limit int64) ([]models.Stock, error) {
	return nil, s.err
}

func tradeRouter(s engine.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := engine.New(s)
	r := gin.New()
	r.GET("/api/trades", GetTradesHandler(e))
	r.GET("/api/traders/:id/concentration", ConcentrationHandler(e))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetTradesResponseShape(t *testing.T) {
	v := 1000.0
	r := tradeRouter(&stubStore{trades: []models.Trade{{
		ID:              "t1",
		TraderKind:      models.TraderCongressional,
		TraderID:        "11111111-1111-4111-8111-111111111111",
		Symbol:          "AAPL",
		TransactionDate: models.NewDate(2024, 3, 10),
		TransactionType: models.TransactionBuy,
		AmountRange:     "$1,001 - $15,000",
		EstimatedValue:  &v,
	}}})

	w := get(r, "/api/trades?limit=10")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]any   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "AAPL", body.Data[0]["symbol"])
	assert.Equal(t, "2024-03-10", body.Data[0]["transactionDate"])
	assert.EqualValues(t, 1, body.Pagination["page"])
	assert.EqualValues(t, 10, body.Pagination["limit"])
	assert.EqualValues(t, 1, body.Pagination["total"])
	assert.EqualValues(t, 1, body.Pagination["pages"])
}

func TestGetTradesValidationFailure(t *testing.T) {
	r := tradeRouter(&stubStore{})

	w := get(r, "/api/trades?limit=101")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "limit")

	w = get(r, "/api/trades?page=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "page")
}

func TestGetTradesUpstreamFailure(t *testing.T) {
	r := tradeRouter(&stubStore{err: errors.New("down")})

	w := get(r, "/api/trades")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "trade store unavailable")
}

func TestConcentrationNotFound(t *testing.T) {
	r := tradeRouter(&stubStore{})

	w := get(r, "/api/traders/11111111-1111-4111-8111-111111111111/concentration")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConcentrationBadID(t *testing.T) {
	r := tradeRouter(&stubStore{})

	w := get(r, "/api/traders/bob/concentration")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcentrationResponseShape(t *testing.T) {
	v := 500.0
	trader := models.Trader{
		ID:   "11111111-1111-4111-8111-111111111111",
		Kind: models.TraderCongressional,
		Name: "Jane Doe",
	}
	r := tradeRouter(&stubStore{
		trader: &trader,
		trades: []models.Trade{{
			ID:              "t1",
			TraderID:        trader.ID,
			TraderKind:      trader.Kind,
			Symbol:          "AAPL",
			TransactionDate: models.NewDate(2024, 3, 10),
			TransactionType: models.TransactionBuy,
			EstimatedValue:  &v,
		}},
	})

	w := get(r, "/api/traders/"+trader.ID+"/concentration")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TraderID   string           `json:"traderId"`
		TraderType string           `json:"traderType"`
		Holdings   []map[string]any `json:"holdings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, trader.ID, body.TraderID)
	assert.Equal(t, "congressional", body.TraderType)
	require.Len(t, body.Holdings, 1)
	assert.EqualValues(t, 100, body.Holdings[0]["positionPercentage"])
	assert.EqualValues(t, 1, body.Holdings[0]["transactionCount"])
}
