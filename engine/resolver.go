package engine

import (
	"context"

	"tradewatch/models"
)

// Resolve attaches trader and stock reference data to a page of trades
// in place, preserving order. One batched lookup per distinct trader id
// and one per distinct symbol, regardless of page size. A trade whose
// reference is missing keeps a nil field; the page never fails for it.
func (e *Engine) Resolve(ctx context.Context, trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	traderIDs := make([]string, 0, len(trades))
	symbols := make([]string, 0, len(trades))
	seenTrader := make(map[string]bool, len(trades))
	seenSymbol := make(map[string]bool, len(trades))
	for _, t := range trades {
		if t.TraderID != "" && !seenTrader[t.TraderID] {
			seenTrader[t.TraderID] = true
			traderIDs = append(traderIDs, t.TraderID)
		}
		if t.Symbol != "" && !seenSymbol[t.Symbol] {
			seenSymbol[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}

	traders, err := e.store.TradersByID(ctx, traderIDs)
	if err != nil {
		return upstream("trader lookup", err)
	}
	stocks, err := e.store.StocksBySymbol(ctx, symbols)
	if err != nil {
		return upstream("stock lookup", err)
	}

	for i := range trades {
		// The kind recorded on the trade is authoritative: a stored
		// trader of the wrong variant is treated as missing.
		if trader, ok := traders[trades[i].TraderID]; ok && trader.Kind == trades[i].TraderKind {
			t := trader
			trades[i].Trader = &t
		}
		if stock, ok := stocks[trades[i].Symbol]; ok {
			s := stock
			trades[i].Stock = &s
		}
	}
	return nil
}
