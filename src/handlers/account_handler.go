package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	db "budget-server/src/db/sql"
	"budget-server/src/logger"
	"budget-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func CreateAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Name          string           `json:"name"`
			Balance       *decimal.Decimal `json:"balance"`
			IsLoanAccount *bool            `json:"is_loan_account"`
			TotalAmount   *decimal.Decimal `json:"total_amount"`
			InterestRate  *float64         `json:"interest_rate"`
			StartDate     string           `json:"start_date"`
			EndDate       string           `json:"end_date"`
			BankID        *int64           `json:"bank_id"`
			AccountTypeID *int64           `json:"account_type_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode create account request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "account name is required", http.StatusBadRequest)
			return
		}
		startDate, err := parseDateField(req.StartDate)
		if err != nil {
			http.Error(w, "invalid start date", http.StatusBadRequest)
			return
		}
		endDate, err := parseDateField(req.EndDate)
		if err != nil {
			http.Error(w, "invalid end date", http.StatusBadRequest)
			return
		}
		account := &models.Account{
			Name:          req.Name,
			IsLoanAccount: req.IsLoanAccount,
			TotalAmount:   req.TotalAmount,
			InterestRate:  req.InterestRate,
			StartDate:     startDate,
			EndDate:       endDate,
			BankID:        req.BankID,
			AccountTypeID: req.AccountTypeID,
		}
		if req.Balance != nil {
			account.Balance = *req.Balance
		}
		created, err := db.CreateAccount(r.Context(), pool, account)
		if err != nil {
			if db.IsUniqueViolation(err) {
				http.Error(w, "account name must be unique", http.StatusBadRequest)
				return
			}
			if db.IsForeignKeyViolation(err) {
				http.Error(w, "bank or account type does not exist", http.StatusBadRequest)
				return
			}
			logg.Error().Err(err).Str("name", req.Name).Msg("failed to create account")
			http.Error(w, "failed to create account", http.StatusInternalServerError)
			return
		}
		logg.Info().Int64("account_id", created.ID).Str("name", created.Name).Msg("created account")
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		idStr := r.URL.Query().Get("account-id")
		name := r.URL.Query().Get("account-name")

		var account *models.Account
		var err error
		switch {
		case idStr != "":
			id, perr := strconv.ParseInt(idStr, 10, 64)
			if perr != nil {
				http.Error(w, "invalid account id", http.StatusBadRequest)
				return
			}
			account, err = db.GetAccountByID(r.Context(), pool, id)
			if err == nil && account != nil && name != "" && !strings.EqualFold(name, account.Name) {
				http.Error(w, "account name and id do not match", http.StatusBadRequest)
				return
			}
		case name != "":
			account, err = db.GetAccountByName(r.Context(), pool, name)
		default:
			http.Error(w, "account id or name must be provided", http.StatusBadRequest)
			return
		}
		if err != nil {
			logg.Error().Err(err).Msg("failed to get account")
			http.Error(w, "failed to get account", http.StatusInternalServerError)
			return
		}
		if account == nil {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

func GetAllAccounts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		accounts, err := db.GetAllAccounts(r.Context(), pool)
		if err != nil {
			logg.Error().Err(err).Msg("failed to get accounts")
			http.Error(w, "failed to get accounts", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

func DeleteAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		id, err := idURLParam(r)
		if err != nil {
			http.Error(w, "invalid account id", http.StatusBadRequest)
			return
		}
		deleted, err := db.DeleteAccount(r.Context(), pool, id)
		if err != nil {
			logg.Error().Err(err).Int64("account_id", id).Msg("failed to delete account")
			http.Error(w, "failed to delete account", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}
		logg.Info().Int64("account_id", id).Msg("deleted account")
		writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
	}
}
