package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"tradewatch/models"
)

// Namespace for deriving stable entity ids from feed source keys, so
// re-ingesting the same disclosure never duplicates a record.
var idNamespace = uuid.MustParse("f3b1a6e2-4c0d-5e8f-9a7b-1c2d3e4f5a6b")

// Disclosure is one raw record as the upstream feed serves it.
type Disclosure struct {
	SourceID        string   `json:"sourceId"`
	TraderKind      string   `json:"traderKind"`
	TraderSourceID  string   `json:"traderSourceId"`
	TraderName      string   `json:"traderName"`
	Chamber         string   `json:"chamber,omitempty"`
	State           string   `json:"state,omitempty"`
	Party           string   `json:"party,omitempty"`
	Company         string   `json:"company,omitempty"`
	Title           string   `json:"title,omitempty"`
	Symbol          string   `json:"symbol"`
	CompanyName     string   `json:"companyName"`
	TransactionDate string   `json:"transactionDate"`
	TransactionType string   `json:"transactionType"`
	AmountRange     string   `json:"amountRange"`
	EstimatedValue  *float64 `json:"estimatedValue,omitempty"`
	Quantity        *int64   `json:"quantity,omitempty"`
	FilingDate      string   `json:"filingDate,omitempty"`
}

type feedPage struct {
	Disclosures []Disclosure `json:"disclosures"`
	HasMore     bool         `json:"hasMore"`
}

// Client pulls disclosure pages from the upstream feed, rate-limited so
// a full sync never hammers the provider.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a feed client capped at rps requests per second.
func NewClient(baseURL string, rps float64) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// FetchAll walks the feed page by page until exhausted.
func (c *Client) FetchAll(ctx context.Context) ([]Disclosure, error) {
	var all []Disclosure
	for page := 1; ; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, batch.Disclosures...)
		if !batch.HasMore {
			return all, nil
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, page int) (*feedPage, error) {
	u := fmt.Sprintf("%s/disclosures?page=%s", c.baseURL, url.QueryEscape(strconv.Itoa(page)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed fetch page %d: status %d", page, resp.StatusCode)
	}
	var out feedPage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("feed decode page %d: %w", page, err)
	}
	return &out, nil
}

// TradeID derives the stable trade id for a feed source key.
func TradeID(sourceID string) string {
	return uuid.NewSHA1(idNamespace, []byte("trade:"+sourceID)).String()
}

// TraderID derives the stable trader id for a feed source key. Ids are
// namespaced per variant so the same value can never collide across
// congressional and corporate traders.
func TraderID(kind models.TraderKind, sourceID string) string {
	return uuid.NewSHA1(idNamespace, []byte("trader:"+string(kind)+":"+sourceID)).String()
}

// ParseAmountMidpoint derives a numeric value from a disclosed amount
// range like "$1,001 - $15,000" (midpoint) or "$50,000" (exact).
// Returns nil when the text carries no usable number.
func ParseAmountMidpoint(amountRange string) *float64 {
	clean := strings.NewReplacer("$", "", ",", "", "+", "").Replace(amountRange)
	parts := strings.Split(clean, "-")

	var bounds []float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil
		}
		bounds = append(bounds, v)
	}
	switch len(bounds) {
	case 1:
		return &bounds[0]
	case 2:
		mid := (bounds[0] + bounds[1]) / 2
		return &mid
	default:
		return nil
	}
}
