package engine

import (
	"context"

	"tradewatch/models"
)

// ListTrades runs one filtered count plus one filtered page scan against
// the store, then enriches the page with trader and stock reference data.
// Zero matches yield an empty page with total 0, not an error. Repeated
// identical calls against unchanged data return identical pages; the
// store's secondary sort key (trade id) makes the ordering total.
func (e *Engine) ListTrades(ctx context.Context, f models.TradeFilter, sort models.TradeSort) (*models.TradePage, error) {
	total, err := e.store.CountTrades(ctx, f)
	if err != nil {
		return nil, upstream("count", err)
	}

	trades := []models.Trade{}
	if total > 0 && f.Offset() < total {
		trades, err = e.store.FindTrades(ctx, f, sort, f.Offset(), f.Limit)
		if err != nil {
			return nil, upstream("find", err)
		}
		if err := e.Resolve(ctx, trades); err != nil {
			return nil, err
		}
	}
	if trades == nil {
		trades = []models.Trade{}
	}

	return &models.TradePage{
		Data:       trades,
		Pagination: models.NewPagination(f.Page, f.Limit, total),
	}, nil
}
