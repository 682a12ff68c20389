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

const accountColumns = `id, name, balance, is_loan_account, total_amount, interest_rate,
		start_date, end_date, bank_id, account_type_id, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.Balance, &a.IsLoanAccount, &a.TotalAmount, &a.InterestRate,
		&a.StartDate, &a.EndDate, &a.BankID, &a.AccountTypeID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func CreateAccount(ctx context.Context, pool *pgxpool.Pool, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO account (name, balance, is_loan_account, total_amount, interest_rate,
			start_date, end_date, bank_id, account_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + accountColumns
	a, err := scanAccount(pool.QueryRow(ctx, query,
		account.Name, account.Balance, account.IsLoanAccount, account.TotalAmount, account.InterestRate,
		account.StartDate, account.EndDate, account.BankID, account.AccountTypeID))
	if err != nil {
		return nil, err
	}
	db.CacheClear(db.CacheAccounts)
	return a, nil
}

func GetAccountByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.Account, error) {
	key := fmt.Sprintf("id:%d", id)
	if v, ok := db.CacheGet(db.CacheAccounts, key); ok {
		a := v.(models.Account)
		return &a, nil
	}
	query := `SELECT ` + accountColumns + ` FROM account WHERE id = $1`
	a, err := scanAccount(pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheAccounts, key, *a)
	return a, nil
}

func GetAccountByName(ctx context.Context, pool *pgxpool.Pool, name string) (*models.Account, error) {
	key := "name:" + strings.ToLower(name)
	if v, ok := db.CacheGet(db.CacheAccounts, key); ok {
		a := v.(models.Account)
		return &a, nil
	}
	query := `SELECT ` + accountColumns + ` FROM account WHERE LOWER(name) = LOWER($1)`
	a, err := scanAccount(pool.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	db.CacheSet(db.CacheAccounts, key, *a)
	return a, nil
}

func GetAllAccounts(ctx context.Context, pool *pgxpool.Pool) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func DeleteAccount(ctx context.Context, pool *pgxpool.Pool, id int64) (bool, error) {
	cmd, err := pool.Exec(ctx, `DELETE FROM account WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}
	db.CacheClear(db.CacheAccounts)
	return true, nil
}
