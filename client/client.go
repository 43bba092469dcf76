// Package client is the presentation side of the tracker: an API client for
// the gateway plus the rendering of summaries and history. It holds the full
// transaction list in memory and re-fetches it wholesale after every
// mutation; there is no incremental or optimistic update.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go-expense-tracker/model"
	"go-expense-tracker/service"
)

// DefaultAPIURL is used when API_URL is not set.
const DefaultAPIURL = "http://localhost:3000/api"

// NormalizeBaseURL makes a usable base out of whatever the environment
// carries: trims whitespace and trailing commas or slashes, then guarantees
// the /api suffix.
func NormalizeBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = DefaultAPIURL
	}
	base = strings.TrimRight(base, ",/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return base
}

// Client calls the transaction gateway over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		http:    &http.Client{},
	}
}

// BaseURL returns the normalized base this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// apiError turns a non-success response into an error carrying the gateway's
// {"error": message} body when there is one.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("%s", envelope.Error)
	}
	return fmt.Errorf("unexpected status %d from API", resp.StatusCode)
}

func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var transactions []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, create model.CreateTransactionRequest) (*model.Transaction, error) {
	payload, err := json.Marshal(create)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var created model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding created transaction: %w", err)
	}
	return &created, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/transactions/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// Health fetches the gateway's diagnostic payload. The payload is returned
// for both arms; err is set only when the response cannot be obtained at all.
func (c *Client) Health(ctx context.Context) (*service.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching health: %w", err)
	}
	defer resp.Body.Close()

	var status service.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decoding health response: %w", err)
	}
	return &status, nil
}
