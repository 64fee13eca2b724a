package models

// SearchKind selects which entity kinds a suggestion query covers.
type SearchKind string

const (
	SearchPoliticians SearchKind = "politician"
	SearchStocks      SearchKind = "stock"
	SearchAll         SearchKind = "all"
)

// PoliticianSuggestion is one ranked politician match.
type PoliticianSuggestion struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Display string     `json:"display"`
	Kind    TraderKind `json:"kind"`
}

// StockSuggestion is one ranked stock match.
type StockSuggestion struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	LastPrice   float64 `json:"lastPrice"`
}

// SuggestionGroup wraps one kind's matches so empty groups still render
// as {"items": []} rather than null.
type SuggestionGroup[T any] struct {
	Items []T `json:"items"`
}

// SearchResults mixes the two entity kinds under one response, each kind
// ranked independently.
type SearchResults struct {
	Politicians SuggestionGroup[PoliticianSuggestion] `json:"politicians"`
	Stocks      SuggestionGroup[StockSuggestion]      `json:"stocks"`
}
