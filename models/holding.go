package models

// Holding is one symbol's slice of a trader's portfolio, derived from
// that trader's trades. Never persisted.
type Holding struct {
	Symbol             string  `json:"symbol"`
	CompanyName        string  `json:"companyName,omitempty"`
	NetPositionValue   float64 `json:"netPositionValue"`
	PositionPercentage float64 `json:"positionPercentage"`
	TransactionCount   int     `json:"transactionCount"`
	LatestTransaction  Date    `json:"latestTransaction"`
}

// ConcentrationReport is the full percentage breakdown of one trader's
// disclosed trade value across symbols. Holdings are ordered by
// descending percentage, ties broken by symbol.
type ConcentrationReport struct {
	TraderID   string     `json:"traderId"`
	TraderType TraderKind `json:"traderType"`
	Holdings   []Holding  `json:"holdings"`
}
