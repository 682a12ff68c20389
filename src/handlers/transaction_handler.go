package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	db "budget-server/src/db/sql"
	"budget-server/src/ledger"
	"budget-server/src/logger"
	"budget-server/src/models"

	"github.com/shopspring/decimal"
)

func CreateTransaction(store *db.TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Description     *string          `json:"description"`
			Amount          *decimal.Decimal `json:"amount"`
			TransactionDate string           `json:"transaction_date"`
			IsExpense       *bool            `json:"is_expense"`
			IsRecurring     *bool            `json:"is_recurring"`
			RecurringDate   *int             `json:"recurring_date"`
			AccountID       *int64           `json:"account_id"`
			CategoryID      *int64           `json:"category_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode create transaction request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount == nil {
			http.Error(w, "amount is required", http.StatusBadRequest)
			return
		}
		transactionDate, err := time.Parse(ledger.DateLayout, req.TransactionDate)
		if err != nil {
			http.Error(w, "invalid transaction date", http.StatusBadRequest)
			return
		}
		transaction := &models.Transaction{
			Description:     req.Description,
			Amount:          *req.Amount,
			TransactionDate: transactionDate,
			IsExpense:       req.IsExpense,
			IsRecurring:     req.IsRecurring,
			RecurringDate:   req.RecurringDate,
			AccountID:       req.AccountID,
			CategoryID:      req.CategoryID,
		}
		created, err := store.Create(r.Context(), transaction)
		if err != nil {
			if db.IsForeignKeyViolation(err) {
				http.Error(w, "account or category does not exist", http.StatusBadRequest)
				return
			}
			logg.Error().Err(err).Msg("failed to create transaction")
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}
		logg.Info().Int64("transaction_id", created.ID).Msg("created transaction")
		writeJSON(w, http.StatusCreated, created)
	}
}

// GetTransactions resolves the query parameters through the filter
// engine. Outcomes: 400 for malformed input, 404 for an id lookup
// miss, 400 "No transactions found" when a filter matches nothing,
// otherwise the matching list.
func GetTransactions(engine *ledger.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		criteria, err := ledger.ParseCriteria(r.URL.Query())
		if err != nil {
			var malformed *ledger.MalformedInputError
			if errors.As(err, &malformed) {
				http.Error(w, malformed.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		transactions, err := engine.Find(r.Context(), criteria)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrNotFound):
				http.Error(w, "transaction not found", http.StatusNotFound)
			case errors.Is(err, ledger.ErrNoTransactions):
				http.Error(w, "No transactions found", http.StatusBadRequest)
			default:
				logg.Error().Err(err).Msg("failed to query transactions")
				http.Error(w, "failed to query transactions", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

func DeleteTransaction(store *db.TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		id, err := idURLParam(r)
		if err != nil {
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}
		deleted, err := store.Delete(r.Context(), id)
		if err != nil {
			logg.Error().Err(err).Int64("transaction_id", id).Msg("failed to delete transaction")
			http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		logg.Info().Int64("transaction_id", id).Msg("deleted transaction")
		writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
	}
}
