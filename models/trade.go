package models

import "fmt"

// TransactionType classifies a disclosed transaction.
type TransactionType string

const (
	TransactionBuy      TransactionType = "buy"
	TransactionSell     TransactionType = "sell"
	TransactionExchange TransactionType = "exchange"
)

// ParseTransactionType validates a raw transaction type string.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionBuy, TransactionSell, TransactionExchange:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("invalid transaction type %q: must be buy, sell or exchange", s)
}

// Trade is a single disclosed securities transaction. Trades are written
// by the sync job and are read-only everywhere else.
type Trade struct {
	ID              string          `json:"id" bson:"_id"`
	TraderKind      TraderKind      `json:"traderKind" bson:"traderKind"`
	TraderID        string          `json:"traderId" bson:"traderId"`
	Symbol          string          `json:"symbol" bson:"symbol"`
	TransactionDate Date            `json:"transactionDate" bson:"transactionDate"`
	TransactionType TransactionType `json:"transactionType" bson:"transactionType"`
	AmountRange     string          `json:"amountRange" bson:"amountRange"`
	EstimatedValue  *float64        `json:"estimatedValue,omitempty" bson:"estimatedValue,omitempty"`
	Quantity        *int64          `json:"quantity,omitempty" bson:"quantity,omitempty"`
	FilingDate      *Date           `json:"filingDate,omitempty" bson:"filingDate,omitempty"`

	// Attached by the entity resolver; never persisted.
	Trader *Trader `json:"trader,omitempty" bson:"-"`
	Stock  *Stock  `json:"stock,omitempty" bson:"-"`
}
