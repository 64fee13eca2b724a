package models

import "fmt"

// TraderKind discriminates the two trader variants. The kind stored on a
// trade record is authoritative; variant fields are never probed to guess it.
type TraderKind string

const (
	TraderCongressional TraderKind = "congressional"
	TraderCorporate     TraderKind = "corporate"
)

// ParseTraderKind validates a raw trader kind string.
func ParseTraderKind(s string) (TraderKind, error) {
	switch TraderKind(s) {
	case TraderCongressional, TraderCorporate:
		return TraderKind(s), nil
	}
	return "", fmt.Errorf("invalid trader kind %q: must be congressional or corporate", s)
}

// Trader is a tagged union over the two tracked trader variants. Exactly
// one of Congressional or Corporate is set, matching Kind.
type Trader struct {
	ID   string     `json:"id" bson:"_id"`
	Kind TraderKind `json:"kind" bson:"kind"`
	Name string     `json:"name" bson:"name"`

	Congressional *CongressionalDetail `json:"congressional,omitempty" bson:"congressional,omitempty"`
	Corporate     *CorporateDetail     `json:"corporate,omitempty" bson:"corporate,omitempty"`
}

// CongressionalDetail holds the congressional-member variant fields.
type CongressionalDetail struct {
	Chamber   string `json:"chamber" bson:"chamber"`
	State     string `json:"state" bson:"state"`
	Party     string `json:"party" bson:"party"`
	TermStart *Date  `json:"termStart,omitempty" bson:"termStart,omitempty"`
	TermEnd   *Date  `json:"termEnd,omitempty" bson:"termEnd,omitempty"`
}

// CorporateDetail holds the corporate-insider variant fields.
type CorporateDetail struct {
	Company string `json:"company" bson:"company"`
	Title   string `json:"title" bson:"title"`
	Symbol  string `json:"symbol" bson:"symbol"`
}

// DisplayName renders the trader the way suggestion lists show it, e.g.
// "Jane Doe (D-CA)" for members or "John Roe - Acme Corp" for insiders.
func (t Trader) DisplayName() string {
	switch t.Kind {
	case TraderCongressional:
		if t.Congressional != nil && t.Congressional.Party != "" && t.Congressional.State != "" {
			return fmt.Sprintf("%s (%.1s-%s)", t.Name, t.Congressional.Party, t.Congressional.State)
		}
	case TraderCorporate:
		if t.Corporate != nil && t.Corporate.Company != "" {
			return fmt.Sprintf("%s - %s", t.Name, t.Corporate.Company)
		}
	}
	return t.Name
}
