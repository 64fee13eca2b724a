package engine

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tradewatch/models"
)

// ParseTradeFilter validates raw query parameters into a TradeFilter.
// Out-of-range values are rejected, never clamped, so callers always
// learn exactly which field was bad. Pure function of its input.
func ParseTradeFilter(params url.Values) (models.TradeFilter, error) {
	f := models.TradeFilter{Page: 1, Limit: models.DefaultPageSize}

	if raw := params.Get("startDate"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return f, models.NewValidationError("startDate", err.Error())
		}
		f.StartDate = &d
	}
	if raw := params.Get("endDate"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return f, models.NewValidationError("endDate", err.Error())
		}
		f.EndDate = &d
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, models.NewValidationError("startDate", "startDate must not be after endDate")
	}

	if raw := params.Get("transactionType"); raw != "" {
		tt, err := models.ParseTransactionType(raw)
		if err != nil {
			return f, models.NewValidationError("transactionType", err.Error())
		}
		f.TransactionType = &tt
	}

	if raw := params.Get("minValue"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, models.NewValidationError("minValue", "must be a number")
		}
		f.MinValue = &v
	}
	if raw := params.Get("maxValue"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, models.NewValidationError("maxValue", "must be a number")
		}
		f.MaxValue = &v
	}
	if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
		return f, models.NewValidationError("minValue", "minValue must not exceed maxValue")
	}

	// Symbols match case-insensitively; the store keeps them uppercase.
	if raw := strings.TrimSpace(params.Get("symbol")); raw != "" {
		f.Symbol = strings.ToUpper(raw)
	} else if params.Get("symbol") != "" {
		return f, models.NewValidationError("symbol", "must not be blank")
	}

	// A malformed trader id fails here so bad input is never mistaken
	// for a trader with zero trades.
	if raw := params.Get("traderId"); raw != "" {
		if _, err := uuid.Parse(raw); err != nil {
			return f, models.NewValidationError("traderId", "must be a valid trader identifier")
		}
		f.TraderID = raw
	}

	if raw := params.Get("page"); raw != "" {
		p, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || p < 1 {
			return f, models.NewValidationError("page", "must be a positive integer")
		}
		f.Page = p
	}
	if raw := params.Get("limit"); raw != "" {
		l, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || l < models.MinPageSize || l > models.MaxPageSize {
			return f, models.NewValidationError("limit",
				fmt.Sprintf("must be an integer between %d and %d", models.MinPageSize, models.MaxPageSize))
		}
		f.Limit = l
	}

	return f, nil
}

// ParseTradeSort validates sort parameters, defaulting to transaction
// date descending.
func ParseTradeSort(params url.Values) (models.TradeSort, error) {
	sort := models.DefaultTradeSort()

	if raw := params.Get("sort"); raw != "" {
		switch models.SortField(raw) {
		case models.SortByTransactionDate, models.SortByFilingDate,
			models.SortByEstimatedValue, models.SortBySymbol:
			sort.Field = models.SortField(raw)
		default:
			return sort, models.NewValidationError("sort", fmt.Sprintf("unknown sort field %q", raw))
		}
	}
	if raw := params.Get("direction"); raw != "" {
		switch raw {
		case "asc":
			sort.Descending = false
		case "desc":
			sort.Descending = true
		default:
			return sort, models.NewValidationError("direction", "must be asc or desc")
		}
	}
	return sort, nil
}

// Suggestion list bounds.
const (
	defaultSearchLimit = 10
	maxSearchLimit     = 25
)

// ParseSearchParams validates suggestion query parameters.
func ParseSearchParams(params url.Values) (query string, kind models.SearchKind, limit int64, err error) {
	query = strings.TrimSpace(params.Get("q"))

	kind = models.SearchAll
	if raw := params.Get("type"); raw != "" {
		switch models.SearchKind(raw) {
		case models.SearchPoliticians, models.SearchStocks, models.SearchAll:
			kind = models.SearchKind(raw)
		default:
			return "", "", 0, models.NewValidationError("type", "must be politician, stock or all")
		}
	}

	limit = int64(defaultSearchLimit)
	if raw := params.Get("limit"); raw != "" {
		l, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || l < 1 || l > maxSearchLimit {
			return "", "", 0, models.NewValidationError("limit",
				fmt.Sprintf("must be an integer between 1 and %d", maxSearchLimit))
		}
		limit = l
	}
	return query, kind, limit, nil
}
