package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tradewatch/models"
)

// GetTrader fetches one trader by id.
func (e *Engine) GetTrader(ctx context.Context, id string) (*models.Trader, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.NewValidationError("traderId", "must be a valid trader identifier")
	}
	trader, err := e.store.GetTrader(ctx, id)
	if err != nil {
		return nil, upstream("trader lookup", err)
	}
	if trader == nil {
		return nil, &models.NotFoundError{Resource: "trader", ID: id}
	}
	return trader, nil
}

// GetStock fetches one stock by symbol, case-insensitively.
func (e *Engine) GetStock(ctx context.Context, symbol string) (*models.Stock, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, models.NewValidationError("symbol", "must not be blank")
	}
	stock, err := e.store.GetStock(ctx, symbol)
	if err != nil {
		return nil, upstream("stock lookup", err)
	}
	if stock == nil {
		return nil, &models.NotFoundError{Resource: "stock", ID: symbol}
	}
	return stock, nil
}
