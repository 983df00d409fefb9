package freeagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
)

// DefaultBaseURL is the production host for the FreeAgent API.
const DefaultBaseURL = "https://api.freeagent.com"

// statementLine is the flattened wire shape FreeAgent accepts for one
// statement item. Amounts are decimal strings, dates YYYY-MM-DD.
type statementLine struct {
	DatedOn     string `json:"dated_on"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
}

type statementUpload struct {
	Statement []statementLine `json:"statement"`
}

// Client implements StatementSink against the FreeAgent bank transactions API.
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
var _ StatementSink = (*Client)(nil)

// UploadStatement uploads the entries as a bank statement. FreeAgent treats
// the upload as idempotent on its side, so re-sending a window is safe.
func (c *Client) UploadStatement(ctx context.Context, bankAccountID string, entries []models.LedgerEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	upload := statementUpload{Statement: make([]statementLine, len(entries))}
	for i, entry := range entries {
		upload.Statement[i] = statementLine{
			DatedOn:     entry.DatedOn,
			Amount:      entry.Amount.StringFixed(2),
			Description: entry.Description,
			Reference:   entry.Reference,
		}
	}

	body, err := json.Marshal(upload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal statement upload: %w", err)
	}

	endpoint := c.BaseURL + "/v2/bank_transactions/statement?bank_account=" + url.QueryEscape(bankAccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build statement request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call FreeAgent statement endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("FreeAgent statement endpoint returned %d: %s", resp.StatusCode, respBody)
	}

	return len(upload.Statement), nil
}
