package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go-expense-tracker/logger"
	"go-expense-tracker/model"
)

const restTable = "transactions"

// RESTStore is a client for a PostgREST-style managed table service. It
// authenticates every request with the access key and maps the service's
// error bodies onto Error so their messages pass through untouched.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTStore(rawURL, apiKey string) *RESTStore {
	return &RESTStore{
		baseURL: strings.TrimRight(strings.TrimSpace(rawURL), "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (s *RESTStore) tableURL() string {
	return s.baseURL + "/rest/v1/" + restTable
}

func (s *RESTStore) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store request failed: %w", err)
	}
	return resp, nil
}

// restError is the error body the table service responds with.
type restError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// errorFrom drains the response and turns a non-2xx status into an Error
// carrying the service's own message.
func errorFrom(resp *http.Response) *Error {
	body, _ := io.ReadAll(resp.Body)

	var restErr restError
	if err := json.Unmarshal(body, &restErr); err == nil && restErr.Message != "" {
		return &Error{Status: resp.StatusCode, Message: restErr.Message}
	}
	return &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("store responded with status %d", resp.StatusCode),
	}
}

func (s *RESTStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	listURL := s.tableURL() + "?select=*&order=date.desc"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFrom(resp)
	}

	var transactions []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("failed to decode store response: %w", err)
	}
	return transactions, nil
}

// restInsert is the insert payload: everything but the ID, which the store
// assigns.
type restInsert struct {
	Type        string       `json:"type"`
	Amount      model.Amount `json:"amount"`
	Description string       `json:"description"`
	Date        model.Date   `json:"date"`
}

func (s *RESTStore) CreateTransaction(ctx context.Context, t model.Transaction) (*model.Transaction, error) {
	payload, err := json.Marshal([]restInsert{{
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
	}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tableURL(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, errorFrom(resp)
	}

	var created []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode store response: %w", err)
	}
	if len(created) != 1 {
		return nil, fmt.Errorf("store returned %d rows for a single insert", len(created))
	}

	logger.Log.WithField("id", created[0].ID).Info("Transaction created in table store")
	return &created[0], nil
}

func (s *RESTStore) DeleteTransaction(ctx context.Context, id string) error {
	deleteURL := s.tableURL() + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Delete-by-predicate succeeds whether or not a row matched.
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return errorFrom(resp)
	}
	return nil
}

func (s *RESTStore) CountTransactions(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.tableURL()+"?select=*", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := s.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errorFrom(resp)
	}

	// Content-Range looks like "*/42" or "0-9/42".
	contentRange := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(contentRange, "/")
	if idx < 0 {
		return 0, fmt.Errorf("store returned no row count (Content-Range %q)", contentRange)
	}
	count, err := strconv.ParseInt(contentRange[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable row count in Content-Range %q", contentRange)
	}
	return count, nil
}
