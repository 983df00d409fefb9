package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// DefaultBaseURL is the production host for the Sell Finances API.
const DefaultBaseURL = "https://apiz.ebay.com"

// pageSize is the maximum the transaction endpoint allows per request.
const pageSize = 200

// transactionPage is the wire envelope of GET /sell/finances/v1/transaction.
type transactionPage struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// Client implements TransactionSource against the eBay Sell Finances API.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

// NewClient creates a new Client. An empty baseURL selects the production host.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		Token:      token,
	}
}

// Make sure we conform to the interface
var _ TransactionSource = (*Client)(nil)

// ListTransactions pages through the transaction endpoint and returns every
// transaction dated between from and to, inclusive.
func (c *Client) ListTransactions(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	// The bounds are calendar dates, so the upper bound must reach the end of
	// the to day or its transactions fall outside the filter.
	filter := fmt.Sprintf("transactionDate:[%s..%s]",
		from.UTC().Format("2006-01-02T15:04:05.000Z"),
		to.UTC().Add(24*time.Hour-time.Millisecond).Format("2006-01-02T15:04:05.000Z"))

	var all []models.Transaction
	for offset := 0; ; offset += pageSize {
		page, err := c.fetchPage(ctx, filter, offset)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Transactions...)
		if len(page.Transactions) < pageSize || len(all) >= page.Total {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, filter string, offset int) (*transactionPage, error) {
	query := url.Values{
		"filter": {filter},
		"limit":  {strconv.Itoa(pageSize)},
		"offset": {strconv.Itoa(offset)},
	}
	endpoint := c.BaseURL + "/sell/finances/v1/transaction?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call eBay transaction endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		// eBay returns 204 when the range has no transactions at all.
		return &transactionPage{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("eBay transaction endpoint returned %d: %s", resp.StatusCode, body)
	}

	var page transactionPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode transaction page: %w", err)
	}

	return &page, nil
}
