package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget-server/src/db"
	"budget-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, budget, remaining_budget, is_rolling_budget, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Budget, &c.RemainingBudget, &c.IsRollingBudget, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO category (name, budget, remaining_budget, is_rolling_budget)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns
	c, err := scanCategory(pool.QueryRow(ctx, query,
		category.Name, category.Budget, category.RemainingBudget, category.IsRollingBudget))
	if err != nil {
		return nil, err
	}
	db.CacheClear(db.CacheCategories)
	return c, nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Category, error) {
	key := fmt.Sprintf("id:%d", id)
	if v, ok := db.CacheGet(db.CacheCategories, key); ok {
		c := v.(models.Category)
		return &c, nil
	}
	query := `SELECT ` + categoryColumns + ` FROM category WHERE id = $1`
	c, err := scanCategory(pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheCategories, key, *c)
	return c, nil
}

func GetCategoryByName(ctx context.Context, pool *pgxpool.Pool, name string) (*models.Category, error) {
	key := "name:" + strings.ToLower(name)
	if v, ok := db.CacheGet(db.CacheCategories, key); ok {
		c := v.(models.Category)
		return &c, nil
	}
	query := `SELECT ` + categoryColumns + ` FROM category WHERE LOWER(name) = LOWER($1)`
	c, err := scanCategory(pool.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheCategories, key, *c)
	return c, nil
}

func GetAllCategories(ctx context.Context, pool *pgxpool.Pool) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM category ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, id int64) (bool, error) {
	cmd, err := pool.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}
	db.CacheClear(db.CacheCategories)
	return true, nil
}
