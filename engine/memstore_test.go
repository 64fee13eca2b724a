package engine

import (
	"context"
	"sort"
	"strings"

	"tradewatch/models"
)

// memStore is an in-memory Store for engine tests. Filtering reuses
// models.TradeFilter.Matches, the reference predicate semantics.
type memStore struct {
	trades  []models.Trade
	traders map[string]models.Trader
	stocks  map[string]models.Stock

	failOn map[string]error
	calls  map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		traders: make(map[string]models.Trader),
		stocks:  make(map[string]models.Stock),
		failOn:  make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (m *memStore) called(op string) error {
	m.calls[op]++
	return m.failOn[op]
}

func (m *memStore) filtered(f models.TradeFilter) []models.Trade {
	var out []models.Trade
	for _, t := range m.trades {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortTrades(trades []models.Trade, s models.TradeSort) {
	value := func(t models.Trade) float64 {
		if t.EstimatedValue == nil {
			return 0
		}
		return *t.EstimatedValue
	}
	less := func(a, b models.Trade) int {
		switch s.Field {
		case models.SortBySymbol:
			return strings.Compare(a.Symbol, b.Symbol)
		case models.SortByEstimatedValue:
			switch {
			case value(a) < value(b):
				return -1
			case value(a) > value(b):
				return 1
			}
			return 0
		default:
			switch {
			case a.TransactionDate.Before(b.TransactionDate):
				return -1
			case a.TransactionDate.After(b.TransactionDate):
				return 1
			}
			return 0
		}
	}
	sort.SliceStable(trades, func(i, j int) bool {
		c := less(trades[i], trades[j])
		if s.Descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return trades[i].ID < trades[j].ID
	})
}

func (m *memStore) FindTrades(ctx context.Context, f models.TradeFilter, s models.TradeSort, offset, limit int64) ([]models.Trade, error) {
	if err := m.called("FindTrades"); err != nil {
		return nil, err
	}
	matched := m.filtered(f)
	sortTrades(matched, s)
	if offset >= int64(len(matched)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[offset:end], nil
}

func (m *memStore) CountTrades(ctx context.Context, f models.TradeFilter) (int64, error) {
	if err := m.called("CountTrades"); err != nil {
		return 0, err
	}
	return int64(len(m.filtered(f))), nil
}

func (m *memStore) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	if err := m.called("TradesByTrader"); err != nil {
		return nil, err
	}
	var out []models.Trade
	for _, t := range m.trades {
		if t.TraderID == traderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) GetTrader(ctx context.Context, id string) (*models.Trader, error) {
	if err := m.called("GetTrader"); err != nil {
		return nil, err
	}
	if tr, ok := m.traders[id]; ok {
		return &tr, nil
	}
	return nil, nil
}

func (m *memStore) TradersByID(ctx context.Context, ids []string) (map[string]models.Trader, error) {
	if err := m.called("TradersByID"); err != nil {
		return nil, err
	}
	out := make(map[string]models.Trader)
	for _, id := range ids {
		if tr, ok := m.traders[id]; ok {
			out[id] = tr
		}
	}
	return out, nil
}

func (m *memStore) GetStock(ctx context.Context, symbol string) (*models.Stock, error) {
	if err := m.called("GetStock"); err != nil {
		return nil, err
	}
	if st, ok := m.stocks[symbol]; ok {
		return &st, nil
	}
	return nil, nil
}

func (m *memStore) StocksBySymbol(ctx context.Context, symbols []string) (map[string]models.Stock, error) {
	if err := m.called("StocksBySymbol"); err != nil {
		return nil, err
	}
	out := make(map[string]models.Stock)
	for _, sym := range symbols {
		if st, ok := m.stocks[sym]; ok {
			out[sym] = st
		}
	}
	return out, nil
}

func (m *memStore) SearchTraders(ctx context.Context, query string, limit int64) ([]models.Trader, error) {
	if err := m.called("SearchTraders"); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []models.Trader
	for _, tr := range m.traders {
		fields := []string{tr.Name}
		if tr.Congressional != nil {
			fields = append(fields, tr.Congressional.State, tr.Congressional.Party)
		}
		if tr.Corporate != nil {
			fields = append(fields, tr.Corporate.Company, tr.Corporate.Symbol)
		}
		for _, f := range fields {
			if f != "" && strings.Contains(strings.ToLower(f), q) {
				out = append(out, tr)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SearchStocks(ctx context.Context, query string, limit int64) ([]models.Stock, error) {
	if err := m.called("SearchStocks"); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []models.Stock
	for _, st := range m.stocks {
		if strings.Contains(strings.ToLower(st.Symbol), q) ||
			strings.Contains(strings.ToLower(st.CompanyName), q) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}
