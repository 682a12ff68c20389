package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget-server/src/ledger"
	"budget-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, description, amount, transaction_date, is_expense, is_recurring,
		recurring_date, account_id, category_id, created_at, updated_at`

// TransactionStore is the Postgres-backed ledger.Store. Each compiled
// predicate maps to exactly one statement; results come back in id
// order.
type TransactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.Description, &t.Amount, &t.TransactionDate, &t.IsExpense, &t.IsRecurring,
		&t.RecurringDate, &t.AccountID, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO ledger (description, amount, transaction_date, is_expense, is_recurring,
			recurring_date, account_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + transactionColumns
	return scanTransaction(s.pool.QueryRow(ctx, query,
		transaction.Description, transaction.Amount, transaction.TransactionDate,
		transaction.IsExpense, transaction.IsRecurring, transaction.RecurringDate,
		transaction.AccountID, transaction.CategoryID))
}

func (s *TransactionStore) FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger WHERE id = $1`
	t, err := scanTransaction(s.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionStore) FindTransactions(ctx context.Context, p ledger.Predicate) ([]models.Transaction, error) {
	query, args := buildTransactionQuery(p)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *TransactionStore) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM ledger WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// buildTransactionQuery translates a compiled predicate into one SQL
// statement. Every set predicate field becomes an ANDed condition;
// PredicateAll yields no WHERE clause at all.
func buildTransactionQuery(p ledger.Predicate) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if p.Description != nil {
		conds = append(conds, fmt.Sprintf("description ILIKE '%%' || %s || '%%'", arg(*p.Description)))
	}
	if p.AccountID != nil {
		conds = append(conds, fmt.Sprintf("account_id = %s", arg(*p.AccountID)))
	}
	if p.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("category_id = %s", arg(*p.CategoryID)))
	}
	if p.Date != nil {
		if p.Date.End != nil {
			conds = append(conds, fmt.Sprintf("transaction_date BETWEEN %s AND %s",
				arg(p.Date.Start), arg(*p.Date.End)))
		} else {
			conds = append(conds, fmt.Sprintf("transaction_date = %s", arg(p.Date.Start)))
		}
	}
	if p.IsExpense != nil {
		conds = append(conds, fmt.Sprintf("is_expense = %s", arg(*p.IsExpense)))
	}
	if p.IsRecurring != nil {
		conds = append(conds, fmt.Sprintf("is_recurring = %s", arg(*p.IsRecurring)))
	}
	if p.RecurringDate != nil {
		conds = append(conds, fmt.Sprintf("recurring_date = %s", arg(*p.RecurringDate)))
	}
	if p.Amount != nil {
		switch p.AmountOp {
		case ledger.ComparisonGreaterOrEqual:
			conds = append(conds, fmt.Sprintf("amount >= %s", arg(*p.Amount)))
		case ledger.ComparisonLessOrEqual:
			conds = append(conds, fmt.Sprintf("amount <= %s", arg(*p.Amount)))
		case ledger.ComparisonBetween:
			conds = append(conds, fmt.Sprintf("amount BETWEEN %s AND %s", arg(*p.Amount), arg(*p.AmountEnd)))
		default:
			conds = append(conds, fmt.Sprintf("amount = %s", arg(*p.Amount)))
		}
	}

	query := `SELECT ` + transactionColumns + ` FROM ledger`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"
	return query, args
}
