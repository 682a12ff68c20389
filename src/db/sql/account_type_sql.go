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

func CreateAccountType(ctx context.Context, pool *pgxpool.Pool, accountType *models.AccountType) (*models.AccountType, error) {
	query := `
		INSERT INTO account_type (type)
		VALUES ($1)
		RETURNING id, type, created_at, updated_at
	`
	var at models.AccountType
	err := pool.QueryRow(ctx, query, accountType.Type).
		Scan(&at.ID, &at.Type, &at.CreatedAt, &at.UpdatedAt)
	if err != nil {
		return nil, err
	}
	db.CacheClear(db.CacheAccountTypes)
	return &at, nil
}

func GetAccountTypeByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.AccountType, error) {
	key := fmt.Sprintf("id:%d", id)
	if v, ok := db.CacheGet(db.CacheAccountTypes, key); ok {
		at := v.(models.AccountType)
		return &at, nil
	}
	query := `SELECT id, type, created_at, updated_at FROM account_type WHERE id = $1`
	var at models.AccountType
	err := pool.QueryRow(ctx, query, id).
		Scan(&at.ID, &at.Type, &at.CreatedAt, &at.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheAccountTypes, key, at)
	return &at, nil
}

func GetAccountTypeByType(ctx context.Context, pool *pgxpool.Pool, accountType string) (*models.AccountType, error) {
	key := "type:" + strings.ToLower(accountType)
	if v, ok := db.CacheGet(db.CacheAccountTypes, key); ok {
		at := v.(models.AccountType)
		return &at, nil
	}
	query := `SELECT id, type, created_at, updated_at FROM account_type WHERE LOWER(type) = LOWER($1)`
	var at models.AccountType
	err := pool.QueryRow(ctx, query, accountType).
		Scan(&at.ID, &at.Type, &at.CreatedAt, &at.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheAccountTypes, key, at)
	return &at, nil
}

func GetAllAccountTypes(ctx context.Context, pool *pgxpool.Pool) ([]models.AccountType, error) {
	query := `SELECT id, type, created_at, updated_at FROM account_type ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.AccountType
	for rows.Next() {
		var at models.AccountType
		if err := rows.Scan(&at.ID, &at.Type, &at.CreatedAt, &at.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, at)
	}
	return types, rows.Err()
}

func DeleteAccountType(ctx context.Context, pool *pgxpool.Pool, id int64) (bool, error) {
	cmd, err := pool.Exec(ctx, `DELETE FROM account_type WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}
	db.CacheClear(db.CacheAccountTypes)
	return true, nil
}
