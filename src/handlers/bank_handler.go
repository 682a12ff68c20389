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

func CreateBank(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode create bank request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "bank name is required", http.StatusBadRequest)
			return
		}
		created, err := db.CreateBank(r.Context(), pool, &models.Bank{Name: req.Name})
		if err != nil {
			if db.IsUniqueViolation(err) {
				http.Error(w, "bank name must be unique", http.StatusBadRequest)
				return
			}
			logg.Error().Err(err).Str("name", req.Name).Msg("failed to create bank")
			http.Error(w, "failed to create bank", http.StatusInternalServerError)
			return
		}
		logg.Info().Int64("bank_id", created.ID).Str("name", created.Name).Msg("created bank")
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetBank(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		idStr := r.URL.Query().Get("bank-id")
		name := r.URL.Query().Get("bank-name")

		var bank *models.Bank
		var err error
		switch {
		case idStr != "":
			id, perr := strconv.ParseInt(idStr, 10, 64)
			if perr != nil {
				http.Error(w, "invalid bank id", http.StatusBadRequest)
				return
			}
			bank, err = db.GetBankByID(r.Context(), pool, id)
			if err == nil && bank != nil && name != "" && !strings.EqualFold(name, bank.Name) {
				http.Error(w, "bank name and id do not match", http.StatusBadRequest)
				return
			}
		case name != "":
			bank, err = db.GetBankByName(r.Context(), pool, name)
		default:
			http.Error(w, "bank id or name must be provided", http.StatusBadRequest)
			return
		}
		if err != nil {
			logg.Error().Err(err).Msg("failed to get bank")
			http.Error(w, "failed to get bank", http.StatusInternalServerError)
			return
		}
		if bank == nil {
			http.Error(w, "bank not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, bank)
	}
}

func GetAllBanks(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		banks, err := db.GetAllBanks(r.Context(), pool)
		if err != nil {
			logg.Error().Err(err).Msg("failed to get banks")
			http.Error(w, "failed to get banks", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, banks)
	}
}

func DeleteBank(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		id, err := idURLParam(r)
		if err != nil {
			http.Error(w, "invalid bank id", http.StatusBadRequest)
			return
		}
		deleted, err := db.DeleteBank(r.Context(), pool, id)
		if err != nil {
			logg.Error().Err(err).Int64("bank_id", id).Msg("failed to delete bank")
			http.Error(w, "failed to delete bank", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "bank not found", http.StatusNotFound)
			return
		}
		logg.Info().Int64("bank_id", id).Msg("deleted bank")
		writeJSON(w, http.StatusOK, map[string]string{"message": "bank deleted"})
	}
}
