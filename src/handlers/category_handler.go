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

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		var req struct {
			Name            string           `json:"name"`
			Budget          *decimal.Decimal `json:"budget"`
			RemainingBudget *decimal.Decimal `json:"remaining_budget"`
			IsRollingBudget *bool            `json:"is_rolling_budget"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logg.Error().Err(err).Msg("failed to decode create category request body")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "category name is required", http.StatusBadRequest)
			return
		}
		category := &models.Category{
			Name:            req.Name,
			Budget:          req.Budget,
			RemainingBudget: req.RemainingBudget,
			IsRollingBudget: req.IsRollingBudget,
		}
		created, err := db.CreateCategory(r.Context(), pool, category)
		if err != nil {
			if db.IsUniqueViolation(err) {
				http.Error(w, "category name must be unique", http.StatusBadRequest)
				return
			}
			logg.Error().Err(err).Str("name", req.Name).Msg("failed to create category")
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}
		logg.Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("created category")
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		idStr := r.URL.Query().Get("category-id")
		name := r.URL.Query().Get("category-name")

		var category *models.Category
		var err error
		switch {
		case idStr != "":
			id, perr := strconv.ParseInt(idStr, 10, 64)
			if perr != nil {
				http.Error(w, "invalid category id", http.StatusBadRequest)
				return
			}
			category, err = db.GetCategoryByID(r.Context(), pool, id)
			if err == nil && category != nil && name != "" && !strings.EqualFold(name, category.Name) {
				http.Error(w, "category name and id do not match", http.StatusBadRequest)
				return
			}
		case name != "":
			category, err = db.GetCategoryByName(r.Context(), pool, name)
		default:
			http.Error(w, "category id or name must be provided", http.StatusBadRequest)
			return
		}
		if err != nil {
			logg.Error().Err(err).Msg("failed to get category")
			http.Error(w, "failed to get category", http.StatusInternalServerError)
			return
		}
		if category == nil {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

func GetAllCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		categories, err := db.GetAllCategories(r.Context(), pool)
		if err != nil {
			logg.Error().Err(err).Msg("failed to get categories")
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logg := logger.FromContext(r.Context())
		id, err := idURLParam(r)
		if err != nil {
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}
		deleted, err := db.DeleteCategory(r.Context(), pool, id)
		if err != nil {
			logg.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		logg.Info().Int64("category_id", id).Msg("deleted category")
		writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
	}
}
