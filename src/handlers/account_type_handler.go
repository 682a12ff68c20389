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
)

func CreateAccountType(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Type string `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode create account type request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Type = strings.TrimSpace(req.Type)
		if req.Type == "" {
			http.Error(w, "account type is required", http.StatusBadRequest)
			return
		}
		created, err := db.CreateAccountType(r.Context(), pool, &models.AccountType{Type: req.Type})
		if err != nil {
			if db.IsUniqueViolation(err) {
				http.Error(w, "account type must be unique", http.StatusBadRequest)
				return
			}
			logg.Error().Err(err).Str("type", req.Type).Msg("failed to create account type")
			http.Error(w, "failed to create account type", http.StatusInternalServerError)
			return
		}
		logg.Info().Int64("account_type_id", created.ID).Str("type", created.Type).Msg("created account type")
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetAccountType(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		idStr := r.URL.Query().Get("account-type-id")
		typeName := r.URL.Query().Get("account-type")

		var accountType *models.AccountType
		var err error
		switch {
		case idStr != "":
			id, perr := strconv.ParseInt(idStr, 10, 64)
			if perr != nil {
				http.Error(w, "invalid account type id", http.StatusBadRequest)
				return
			}
			accountType, err = db.GetAccountTypeByID(r.Context(), pool, id)
			if err == nil && accountType != nil && typeName != "" && !strings.EqualFold(typeName, accountType.Type) {
				http.Error(w, "account type and id do not match", http.StatusBadRequest)
				return
			}
		case typeName != "":
			accountType, err = db.GetAccountTypeByType(r.Context(), pool, typeName)
		default:
			http.Error(w, "account type id or type must be provided", http.StatusBadRequest)
			return
		}
		if err != nil {
			logg.Error().Err(err).Msg("failed to get account type")
			http.Error(w, "failed to get account type", http.StatusInternalServerError)
			return
		}
		if accountType == nil {
			http.Error(w, "account type not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, accountType)
	}
}

func GetAllAccountTypes(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		types, err := db.GetAllAccountTypes(r.Context(), pool)
		if err != nil {
			logg.Error().Err(err).Msg("failed to get account types")
			http.Error(w, "failed to get account types", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, types)
	}
}

func DeleteAccountType(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		id, err := idURLParam(r)
		if err != nil {
			http.Error(w, "invalid account type id", http.StatusBadRequest)
			return
		}
		deleted, err := db.DeleteAccountType(r.Context(), pool, id)
		if err != nil {
			logg.Error().Err(err).Int64("account_type_id", id).Msg("failed to delete account type")
			http.Error(w, "failed to delete account type", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "account type not found", http.StatusNotFound)
			return
		}
		logg.Info().Int64("account_type_id", id).Msg("deleted account type")
		writeJSON(w, http.StatusOK, map[string]string{"message": "account type deleted"})
	}
}
