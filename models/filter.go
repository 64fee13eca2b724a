package models

// Pagination bounds for trade listings.
const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// SortField names a sortable trade attribute.
type SortField string

const (
	SortByTransactionDate SortField = "transactionDate"
	SortByFilingDate      SortField = "filingDate"
	SortByEstimatedValue  SortField = "estimatedValue"
	SortBySymbol          SortField = "symbol"
)

// TradeSort is a validated sort instruction. The planner always adds the
// trade id as a secondary key so pagination stays deterministic.
type TradeSort struct {
	Field      SortField
	Descending bool
}

// DefaultTradeSort orders by transaction date, most recent first.
func DefaultTradeSort() TradeSort {
	return TradeSort{Field: SortByTransactionDate, Descending: true}
}

// TradeFilter is a validated, immutable set of trade query constraints.
// Nil fields mean the predicate is absent; present predicates combine
// conjunctively. Construct via engine.ParseTradeFilter, which enforces
// the field rules; hand-built filters bypass validation and are only
// appropriate in tests.
type TradeFilter struct {
	StartDate       *Date
	EndDate         *Date
	TransactionType *TransactionType
	MinValue        *float64
	MaxValue        *float64
	Symbol          string
	TraderID        string
	Page            int64
	Limit           int64
}

// Offset returns the number of rows preceding the requested page.
func (f TradeFilter) Offset() int64 {
	return (f.Page - 1) * f.Limit
}

// Matches reports whether a trade satisfies every present predicate.
// Date and value ranges are inclusive on both ends. The mongo store
// translates the same predicates to a server-side filter; this form is
// the reference semantics and backs the in-memory store.
func (f TradeFilter) Matches(t Trade) bool {
	if f.StartDate != nil && t.TransactionDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.TransactionDate.After(*f.EndDate) {
		return false
	}
	if f.TransactionType != nil && t.TransactionType != *f.TransactionType {
		return false
	}
	if f.MinValue != nil && (t.EstimatedValue == nil || *t.EstimatedValue < *f.MinValue) {
		return false
	}
	if f.MaxValue != nil && (t.EstimatedValue == nil || *t.EstimatedValue > *f.MaxValue) {
		return false
	}
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.TraderID != "" && t.TraderID != f.TraderID {
		return false
	}
	return true
}
