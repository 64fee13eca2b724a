package models

import "time"

// Stock is reference data for one listed security. The symbol is the
// identity and is stored in canonical uppercase form.
type Stock struct {
	Symbol      string    `json:"symbol" bson:"_id"`
	CompanyName string    `json:"companyName" bson:"companyName"`
	Sector      string    `json:"sector,omitempty" bson:"sector,omitempty"`
	Industry    string    `json:"industry,omitempty" bson:"industry,omitempty"`
	LastPrice   float64   `json:"lastPrice" bson:"lastPrice"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
