package engine

import (
	"tradewatch/models"
)

func fptr(v float64) *float64 { return &v }

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func trade(id, traderID, symbol, day string, typ models.TransactionType, value *float64) models.Trade {
	return models.Trade{
		ID:              id,
		TraderKind:      models.TraderCongressional,
		TraderID:        traderID,
		Symbol:          symbol,
		TransactionDate: date(day),
		TransactionType: typ,
		AmountRange:     "$1,001 - $15,000",
		EstimatedValue:  value,
	}
}

func congressional(id, name, chamber, state, party string) models.Trader {
	return models.Trader{
		ID:   id,
		Kind: models.TraderCongressional,
		Name: name,
		Congressional: &models.CongressionalDetail{
			Chamber: chamber,
			State:   state,
			Party:   party,
		},
	}
}

func insider(id, name, company, title, symbol string) models.Trader {
	return models.Trader{
		ID:   id,
		Kind: models.TraderCorporate,
		Name: name,
		Corporate: &models.CorporateDetail{
			Company: company,
			Title:   title,
			Symbol:  symbol,
		},
	}
}
