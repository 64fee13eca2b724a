package engine

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"tradewatch/models"
)

// Queries shorter than this return nothing; single characters would match
// most of the reference data on every keystroke.
const minQueryLen = 2

// Search returns ranked suggestions for the given free-text query. Each
// requested kind is queried and ranked independently up to limit; for
// SearchAll the two groups sit side by side with no cross-kind scoring.
func (e *Engine) Search(ctx context.Context, query string, kind models.SearchKind, limit int64) (*models.SearchResults, error) {
	res := &models.SearchResults{
		Politicians: models.SuggestionGroup[models.PoliticianSuggestion]{Items: []models.PoliticianSuggestion{}},
		Stocks:      models.SuggestionGroup[models.StockSuggestion]{Items: []models.StockSuggestion{}},
	}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return res, nil
	}

	if kind == models.SearchPoliticians || kind == models.SearchAll {
		traders, err := e.store.SearchTraders(ctx, query, limit)
		if err != nil {
			return nil, upstream("trader search", err)
		}
		res.Politicians.Items = rankPoliticians(query, traders, limit)
	}
	if kind == models.SearchStocks || kind == models.SearchAll {
		stocks, err := e.store.SearchStocks(ctx, query, limit)
		if err != nil {
			return nil, upstream("stock search", err)
		}
		res.Stocks.Items = rankStocks(query, stocks, limit)
	}
	return res, nil
}

// matchScore grades how well query matches field: exact, prefix, then
// substring by position. Lower is better; ok is false on no match.
func matchScore(query, field string) (score int, ok bool) {
	if field == "" {
		return 0, false
	}
	idx := strings.Index(strings.ToLower(field), strings.ToLower(query))
	if idx < 0 {
		return 0, false
	}
	switch {
	case idx == 0 && len(field) == len(query):
		return 0, true
	case idx == 0:
		return 1, true
	default:
		return 2 + idx, true
	}
}

func bestScore(query string, fields ...string) (int, bool) {
	best, found := 0, false
	for _, f := range fields {
		if s, ok := matchScore(query, f); ok && (!found || s < best) {
			best, found = s, true
		}
	}
	return best, found
}

func rankPoliticians(query string, traders []models.Trader, limit int64) []models.PoliticianSuggestion {
	type scored struct {
		s models.PoliticianSuggestion
		n int
	}
	matched := make([]scored, 0, len(traders))
	for _, tr := range traders {
		fields := []string{tr.Name}
		if tr.Congressional != nil {
			fields = append(fields, tr.Congressional.State, tr.Congressional.Party)
		}
		if tr.Corporate != nil {
			fields = append(fields, tr.Corporate.Company, tr.Corporate.Symbol)
		}
		score, ok := bestScore(query, fields...)
		if !ok {
			continue
		}
		matched = append(matched, scored{
			s: models.PoliticianSuggestion{ID: tr.ID, Name: tr.Name, Display: tr.DisplayName(), Kind: tr.Kind},
			n: score,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].n != matched[j].n {
			return matched[i].n < matched[j].n
		}
		return matched[i].s.Name < matched[j].s.Name
	})
	out := make([]models.PoliticianSuggestion, 0, limit)
	for _, m := range matched {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, m.s)
	}
	return out
}

func rankStocks(query string, stocks []models.Stock, limit int64) []models.StockSuggestion {
	type scored struct {
		s models.StockSuggestion
		n int
	}
	matched := make([]scored, 0, len(stocks))
	for _, st := range stocks {
		score, ok := bestScore(query, st.Symbol, st.CompanyName)
		if !ok {
			continue
		}
		matched = append(matched, scored{
			s: models.StockSuggestion{Symbol: st.Symbol, CompanyName: st.CompanyName, LastPrice: st.LastPrice},
			n: score,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].n != matched[j].n {
			return matched[i].n < matched[j].n
		}
		return matched[i].s.Symbol < matched[j].s.Symbol
	})
	out := make([]models.StockSuggestion, 0, limit)
	for _, m := range matched {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, m.s)
	}
	return out
}
