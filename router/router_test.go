// file: router/router_test.go

package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-expense-tracker/config"
	"go-expense-tracker/handler"
	"go-expense-tracker/logger"
	"go-expense-tracker/model"
	"go-expense-tracker/router"
	"go-expense-tracker/service"
	"go-expense-tracker/store"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockTransactionStore is a mock for store.TransactionStore.
type MockTransactionStore struct{ mock.Mock }

func (m *MockTransactionStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionStore) CreateTransaction(ctx context.Context, t model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionStore) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionStore) CountTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestRouter(mockStore *MockTransactionStore) http.Handler {
	cfg := &config.Config{}
	cfg.Store.URL = "https://store.example"
	cfg.Store.Key = "secret"

	transactionService := service.NewTransactionService(mockStore, cfg)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	healthHandler := handler.NewHealthHandler(transactionService)
	return router.NewRouter(transactionHandler, healthHandler)
}

func TestListTransactionsEndpoint(t *testing.T) {
	t.Run("returns the list ordered as the store delivers it", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("ListTransactions", mock.Anything).Return([]model.Transaction{
			{ID: 2, Type: "income", Amount: 500, Description: "salary", Date: model.NewDate(2024, time.January, 2)},
			{ID: 1, Type: "expense", Amount: 100, Description: "cat food", Date: model.NewDate(2024, time.January, 1)},
		}, nil).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("GET", "/api/transactions", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		expected := `[
			{"id":2,"type":"income","amount":500,"description":"salary","date":"2024-01-02"},
			{"id":1,"type":"expense","amount":100,"description":"cat food","date":"2024-01-01"}
		]`
		assert.JSONEq(t, expected, rr.Body.String())
	})

	t.Run("empty table serializes as an empty array", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("ListTransactions", mock.Anything).Return([]model.Transaction(nil), nil).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("GET", "/api/transactions", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("store failure surfaces its message", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("ListTransactions", mock.Anything).
			Return(nil, &store.Error{Status: 503, Message: "connection refused"}).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("GET", "/api/transactions", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"connection refused"}`, rr.Body.String())
	})
}

func TestCreateTransactionEndpoint(t *testing.T) {
	t.Run("valid create returns 201 with the assigned id", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("CreateTransaction", mock.Anything, model.Transaction{
			Type:        "expense",
			Amount:      100,
			Description: "cat food",
			Date:        model.NewDate(2024, time.January, 1),
		}).Return(&model.Transaction{
			ID: 7, Type: "expense", Amount: 100, Description: "cat food", Date: model.NewDate(2024, time.January, 1),
		}, nil).Once()
		r := newTestRouter(mockStore)

		body := `{"type":"expense","amount":100,"description":"cat food","date":"2024-01-01"}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":7,"type":"expense","amount":100,"description":"cat food","date":"2024-01-01"}`, rr.Body.String())
		mockStore.AssertExpectations(t)
	})

	t.Run("string amount is parsed at the boundary", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("CreateTransaction", mock.Anything, mock.AnythingOfType("model.Transaction")).
			Return(&model.Transaction{ID: 8, Type: "expense", Amount: 1500, Description: "rent", Date: model.NewDate(2024, time.January, 5)}, nil).Once()
		r := newTestRouter(mockStore)

		body := `{"type":"expense","amount":"1500","description":"rent","date":"2024-01-05"}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing amount is a 400 with the fixed message and no insert", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		r := newTestRouter(mockStore)

		body := `{"type":"expense","description":"cat food","date":"2024-01-01"}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"all fields are required"}`, rr.Body.String())
		mockStore.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("empty date is a 400 with the fixed message", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		r := newTestRouter(mockStore)

		body := `{"type":"expense","amount":100,"description":"cat food","date":""}`
		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"all fields are required"}`, rr.Body.String())
	})

	t.Run("unparseable body is a 400", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount": not json`))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteTransactionEndpoint(t *testing.T) {
	t.Run("delete returns 204 with an empty body", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("DeleteTransaction", mock.Anything, "12").Return(nil).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("DELETE", "/api/transactions/12", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		mockStore.AssertExpectations(t)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("DeleteTransaction", mock.Anything, "12").
			Return(&store.Error{Status: 503, Message: "connection pool exhausted"}).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("DELETE", "/api/transactions/12", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"connection pool exhausted"}`, rr.Body.String())
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("CountTransactions", mock.Anything).Return(int64(0), nil).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("GET", "/api/health", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok","storeConnected":true,"env":{"hasUrl":true,"hasKey":true}}`, rr.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		mockStore := new(MockTransactionStore)
		mockStore.On("CountTransactions", mock.Anything).
			Return(int64(0), &store.Error{Status: 401, Message: "Invalid API key"}).Once()
		r := newTestRouter(mockStore)

		req, _ := http.NewRequest("GET", "/api/health", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"error","storeConnected":false,"message":"Invalid API key","env":{"hasUrl":true,"hasKey":true}}`, rr.Body.String())
	})
}

func TestSummaryEndpointIsAStub(t *testing.T) {
	r := newTestRouter(new(MockTransactionStore))

	req, _ := http.NewRequest("GET", "/api/summary", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotImplemented, rr.Code)
}

func TestRootLiveness(t *testing.T) {
	r := newTestRouter(new(MockTransactionStore))

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "up and running")
}

func TestPreflightRequests(t *testing.T) {
	r := newTestRouter(new(MockTransactionStore))

	req, _ := http.NewRequest("OPTIONS", "/api/transactions", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
