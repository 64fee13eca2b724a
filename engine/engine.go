// Package engine implements the trade query and portfolio analytics core:
// filter validation, query planning, entity resolution, suggestion search
// and portfolio concentration. It owns no state and performs no I/O of its
// own; all data access goes through the injected Store.
package engine

import (
	"context"

	"tradewatch/models"
)

// Store is the trade store the engine reads from. Implementations supply
// some consistent snapshot per call; the engine adds no locking of its own.
// Lookup methods return (nil, nil) when the entity does not exist, so a
// missing reference is distinguishable from a failed call.
type Store interface {
	FindTrades(ctx context.Context, f models.TradeFilter, sort models.TradeSort, offset, limit int64) ([]models.Trade, error)
	CountTrades(ctx context.Context, f models.TradeFilter) (int64, error)
	TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error)

	GetTrader(ctx context.Context, id string) (*models.Trader, error)
	TradersByID(ctx context.Context, ids []string) (map[string]models.Trader, error)
	GetStock(ctx context.Context, symbol string) (*models.Stock, error)
	StocksBySymbol(ctx context.Context, symbols []string) (map[string]models.Stock, error)

	SearchTraders(ctx context.Context, query string, limit int64) ([]models.Trader, error)
	SearchStocks(ctx context.Context, query string, limit int64) ([]models.Stock, error)
}

// Engine is the query engine facade. Safe for concurrent use; every
// operation is an independent synchronous read.
type Engine struct {
	store Store
}

// New builds an Engine over the given store.
func New(store Store) *Engine {
	return &Engine{store: store}
}

func upstream(op string, err error) error {
	return &models.UpstreamError{Op: op, Err: err}
}
