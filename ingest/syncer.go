package ingest

import (
	"context"
	"strings"
	"time"

	"github.com/phuslu/log"

	"tradewatch/models"
)

// Sink is the write side of the store. Upsert-only; the sync job is the
// only component allowed to touch it.
type Sink interface {
	UpsertTrades(ctx context.Context, trades []models.Trade) error
	UpsertTraders(ctx context.Context, traders []models.Trader) error
	UpsertStocks(ctx context.Context, stocks []models.Stock) error
}

// Syncer turns feed disclosures into reference data and writes them.
type Syncer struct {
	client *Client
	sink   Sink
}

// NewSyncer wires a feed client to a store sink.
func NewSyncer(client *Client, sink Sink) *Syncer {
	return &Syncer{client: client, sink: sink}
}

// Run performs one full sync pass and returns the number of trades
// written. Malformed feed records are skipped with a warning rather than
// failing the batch.
func (s *Syncer) Run(ctx context.Context) (int, error) {
	disclosures, err := s.client.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	trades := make([]models.Trade, 0, len(disclosures))
	tradersByID := make(map[string]models.Trader)
	stocksBySymbol := make(map[string]models.Stock)

	for _, d := range disclosures {
		trade, trader, stock, err := normalize(d)
		if err != nil {
			log.Warn().Err(err).Str("sourceId", d.SourceID).Msg("skipping malformed disclosure")
			continue
		}
		trades = append(trades, trade)
		tradersByID[trader.ID] = trader
		stocksBySymbol[stock.Symbol] = stock
	}

	traders := make([]models.Trader, 0, len(tradersByID))
	for _, tr := range tradersByID {
		traders = append(traders, tr)
	}
	stocks := make([]models.Stock, 0, len(stocksBySymbol))
	for _, st := range stocksBySymbol {
		stocks = append(stocks, st)
	}

	if err := s.sink.UpsertTraders(ctx, traders); err != nil {
		return 0, err
	}
	if err := s.sink.UpsertStocks(ctx, stocks); err != nil {
		return 0, err
	}
	if err := s.sink.UpsertTrades(ctx, trades); err != nil {
		return 0, err
	}
	return len(trades), nil
}

// normalize maps one feed record onto the persistent model: canonical
// uppercase symbol, stable ids, parsed dates, midpoint-derived estimated
// value when the feed gives none.
func normalize(d Disclosure) (models.Trade, models.Trader, models.Stock, error) {
	var zeroTrade models.Trade
	var zeroTrader models.Trader
	var zeroStock models.Stock

	kind, err := models.ParseTraderKind(d.TraderKind)
	if err != nil {
		return zeroTrade, zeroTrader, zeroStock, err
	}
	txType, err := models.ParseTransactionType(d.TransactionType)
	if err != nil {
		return zeroTrade, zeroTrader, zeroStock, err
	}
	txDate, err := models.ParseDate(d.TransactionDate)
	if err != nil {
		return zeroTrade, zeroTrader, zeroStock, err
	}

	symbol := strings.ToUpper(strings.TrimSpace(d.Symbol))

	trade := models.Trade{
		ID:              TradeID(d.SourceID),
		TraderKind:      kind,
		TraderID:        TraderID(kind, d.TraderSourceID),
		Symbol:          symbol,
		TransactionDate: txDate,
		TransactionType: txType,
		AmountRange:     d.AmountRange,
		EstimatedValue:  d.EstimatedValue,
		Quantity:        d.Quantity,
	}
	if trade.EstimatedValue == nil {
		trade.EstimatedValue = ParseAmountMidpoint(d.AmountRange)
	}
	if d.FilingDate != "" {
		fd, err := models.ParseDate(d.FilingDate)
		if err != nil {
			return zeroTrade, zeroTrader, zeroStock, err
		}
		trade.FilingDate = &fd
	}

	trader := models.Trader{
		ID:   trade.TraderID,
		Kind: kind,
		Name: d.TraderName,
	}
	switch kind {
	case models.TraderCongressional:
		trader.Congressional = &models.CongressionalDetail{
			Chamber: d.Chamber,
			State:   strings.ToUpper(d.State),
			Party:   d.Party,
		}
	case models.TraderCorporate:
		trader.Corporate = &models.CorporateDetail{
			Company: d.Company,
			Title:   d.Title,
			Symbol:  symbol,
		}
	}

	stock := models.Stock{
		Symbol:      symbol,
		CompanyName: d.CompanyName,
		UpdatedAt:   time.Now().UTC(),
	}
	return trade, trader, stock, nil
}
