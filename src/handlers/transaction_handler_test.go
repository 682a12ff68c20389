package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"budget-server/src/ledger"
	"budget-server/src/models"

	"github.com/shopspring/decimal"
)

type fakeStore struct {
	byID    map[int64]models.Transaction
	results []models.Transaction
}

func (s *fakeStore) FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	if t, ok := s.byID[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *fakeStore) FindTransactions(ctx context.Context, p ledger.Predicate) ([]models.Transaction, error) {
	return s.results, nil
}

func newTestEngine(store *fakeStore) *ledger.Engine {
	return ledger.NewEngine(store)
}

func doGet(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetTransactionsByIDMiss(t *testing.T) {
	handler := GetTransactions(newTestEngine(&fakeStore{}))
	rec := doGet(t, handler, "/api/v1/transaction?transaction-id=9999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetTransactionsByIDHit(t *testing.T) {
	desc := "Transaction 1"
	store := &fakeStore{byID: map[int64]models.Transaction{1: {
		ID:              1,
		Description:     &desc,
		Amount:          decimal.NewFromInt(100),
		TransactionDate: time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC),
	}}}
	handler := GetTransactions(newTestEngine(store))
	rec := doGet(t, handler, "/api/v1/transaction?transaction-id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.Transaction
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("body = %+v, want single transaction with id 1", got)
	}
}

func TestGetTransactionsEmptyResult(t *testing.T) {
	handler := GetTransactions(newTestEngine(&fakeStore{}))
	rec := doGet(t, handler, "/api/v1/transaction?description=rent")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "No transactions found" {
		t.Errorf("body = %q, want %q", body, "No transactions found")
	}
}

func TestGetTransactionsMalformedDate(t *testing.T) {
	handler := GetTransactions(newTestEngine(&fakeStore{}))
	rec := doGet(t, handler, "/api/v1/transaction?start-date=01-02-2022")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "start-date") {
		t.Errorf("body = %q, want it to name the malformed parameter", rec.Body.String())
	}
}

func TestGetTransactionsMalformedAmount(t *testing.T) {
	handler := GetTransactions(newTestEngine(&fakeStore{}))
	rec := doGet(t, handler, "/api/v1/transaction?start-amount=ten")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetTransactionsList(t *testing.T) {
	store := &fakeStore{results: []models.Transaction{
		{ID: 1, Amount: decimal.NewFromInt(100), TransactionDate: time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Amount: decimal.NewFromInt(200), TransactionDate: time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC)},
	}}
	handler := GetTransactions(newTestEngine(store))
	rec := doGet(t, handler, "/api/v1/transaction?start-date=2022-01-01&end-date=2022-01-31")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []models.Transaction
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("body = %+v, want both transactions in store order", got)
	}
}

func TestGetTransactionsNoParams(t *testing.T) {
	store := &fakeStore{results: []models.Transaction{{ID: 1, Amount: decimal.NewFromInt(1)}}}
	handler := GetTransactions(newTestEngine(store))
	rec := doGet(t, handler, "/api/v1/transaction")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for unfiltered list", rec.Code)
	}
}
