package engine

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"tradewatch/models"
)

// Concentration groups every trade of one trader by symbol and reports
// each symbol's share of the trader's total absolute disclosed value.
// Buys add to the signed net position, sells subtract, exchanges move
// nothing net; the percentage is always by absolute value, so a trader
// who only ever bought still gets spend-proportional shares. Trades
// without an estimated value count toward transactionCount only.
//
// A trader with no trades yields an empty holdings list; an unknown
// trader id is a NotFoundError.
func (e *Engine) Concentration(ctx context.Context, traderID string) (*models.ConcentrationReport, error) {
	if _, err := uuid.Parse(traderID); err != nil {
		return nil, models.NewValidationError("traderId", "must be a valid trader identifier")
	}

	trader, err := e.store.GetTrader(ctx, traderID)
	if err != nil {
		return nil, upstream("trader lookup", err)
	}
	if trader == nil {
		return nil, &models.NotFoundError{Resource: "trader", ID: traderID}
	}

	trades, err := e.store.TradesByTrader(ctx, traderID)
	if err != nil {
		return nil, upstream("trades by trader", err)
	}

	type position struct {
		abs    float64
		net    float64
		count  int
		latest models.Date
	}
	positions := make(map[string]*position)
	totalAbs := 0.0
	for _, t := range trades {
		p := positions[t.Symbol]
		if p == nil {
			p = &position{latest: t.TransactionDate}
			positions[t.Symbol] = p
		}
		p.count++
		if t.TransactionDate.After(p.latest) {
			p.latest = t.TransactionDate
		}
		if t.EstimatedValue == nil {
			continue
		}
		v := math.Abs(*t.EstimatedValue)
		p.abs += v
		totalAbs += v
		switch t.TransactionType {
		case models.TransactionBuy:
			p.net += v
		case models.TransactionSell:
			p.net -= v
		}
	}

	symbols := make([]string, 0, len(positions))
	for sym := range positions {
		symbols = append(symbols, sym)
	}
	names, err := e.store.StocksBySymbol(ctx, symbols)
	if err != nil {
		return nil, upstream("stock lookup", err)
	}

	holdings := make([]models.Holding, 0, len(positions))
	for sym, p := range positions {
		pct := 0.0
		if totalAbs > 0 {
			pct = 100 * p.abs / totalAbs
		}
		h := models.Holding{
			Symbol:             sym,
			NetPositionValue:   p.net,
			PositionPercentage: pct,
			TransactionCount:   p.count,
			LatestTransaction:  p.latest,
		}
		if st, ok := names[sym]; ok {
			h.CompanyName = st.CompanyName
		}
		holdings = append(holdings, h)
	}

	// Order at full precision before rounding for display.
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].PositionPercentage != holdings[j].PositionPercentage {
			return holdings[i].PositionPercentage > holdings[j].PositionPercentage
		}
		return holdings[i].Symbol < holdings[j].Symbol
	})
	for i := range holdings {
		holdings[i].PositionPercentage = math.Round(holdings[i].PositionPercentage*100) / 100
		holdings[i].NetPositionValue = math.Round(holdings[i].NetPositionValue*100) / 100
	}

	return &models.ConcentrationReport{
		TraderID:   traderID,
		TraderType: trader.Kind,
		Holdings:   holdings,
	}, nil
}
