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

func CreateBank(ctx context.Context, pool *pgxpool.Pool, bank *models.Bank) (*models.Bank, error) {
	query := `
		INSERT INTO bank (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`
	var b models.Bank
	err := pool.QueryRow(ctx, query, bank.Name).
		Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	db.CacheClear(db.CacheBanks)
	return &b, nil
}

func GetBankByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Bank, error) {
	key := fmt.Sprintf("id:%d", id)
	if v, ok := db.CacheGet(db.CacheBanks, key); ok {
		b := v.(models.Bank)
		return &b, nil
	}
	query := `SELECT id, name, created_at, updated_at FROM bank WHERE id = $1`
	var b models.Bank
	err := pool.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheBanks, key, b)
	return &b, nil
}

func GetBankByName(ctx context.Context, pool *pgxpool.Pool, name string) (*models.Bank, error) {
	key := "name:" + strings.ToLower(name)
	if v, ok := db.CacheGet(db.CacheBanks, key); ok {
		b := v.(models.Bank)
		return &b, nil
	}
	query := `SELECT id, name, created_at, updated_at FROM bank WHERE LOWER(name) = LOWER($1)`
	var b models.Bank
	err := pool.QueryRow(ctx, query, name).
		Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheBanks, key, b)
	return &b, nil
}

func GetAllBanks(ctx context.Context, pool *pgxpool.Pool) ([]models.Bank, error) {
	query := `SELECT id, name, created_at, updated_at FROM bank ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []models.Bank
	for rows.Next() {
		var b models.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func DeleteBank(ctx context.Context, pool *pgxpool.Pool, id int64) (bool, error) {
	cmd, err := pool.Exec(ctx, `DELETE FROM bank WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}
	db.CacheClear(db.CacheBanks)
	return true, nil
}
