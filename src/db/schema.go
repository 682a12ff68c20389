package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema defines the tables the server owns. Uniqueness of entity
// names is enforced here, not in application code.
const Schema = `
CREATE TABLE IF NOT EXISTS bank (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS account_type (
    id BIGSERIAL PRIMARY KEY,
    type TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS account (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    balance NUMERIC NOT NULL DEFAULT 0,
    is_loan_account BOOLEAN,
    total_amount NUMERIC,
    interest_rate DOUBLE PRECISION,
    start_date DATE,
    end_date DATE,
    bank_id BIGINT REFERENCES bank(id),
    account_type_id BIGINT REFERENCES account_type(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS category (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    budget NUMERIC,
    remaining_budget NUMERIC,
    is_rolling_budget BOOLEAN,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ledger (
    id BIGSERIAL PRIMARY KEY,
    description TEXT,
    amount NUMERIC NOT NULL,
    transaction_date DATE NOT NULL,
    is_expense BOOLEAN,
    is_recurring BOOLEAN,
    recurring_date INT,
    account_id BIGINT REFERENCES account(id),
    category_id BIGINT REFERENCES category(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_ledger_transaction_date ON ledger(transaction_date);
CREATE INDEX IF NOT EXISTS idx_ledger_account_id ON ledger(account_id);
CREATE INDEX IF NOT EXISTS idx_ledger_category_id ON ledger(category_id);
`

// EnsureSchema creates all tables if they don't exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
