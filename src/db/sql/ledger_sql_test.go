package db

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"budget-server/src/ledger"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	d, err := time.Parse(ledger.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// whereClause strips the SELECT list so cases only assert the
// conditions the predicate compiled to.
func whereClause(t *testing.T, query string) string {
	t.Helper()
	i := strings.Index(query, "FROM ledger")
	if i < 0 {
		t.Fatalf("query %q has no FROM clause", query)
	}
	return query[i+len("FROM ledger"):]
}

func TestBuildTransactionQuery(t *testing.T) {
	tests := []struct {
		name      string
		predicate ledger.Predicate
		wantTail  string
		wantArgs  []any
	}{
		{
			"full scan",
			ledger.Predicate{Kind: ledger.PredicateAll},
			" ORDER BY id",
			nil,
		},
		{
			"description alone",
			ledger.Predicate{Kind: ledger.PredicateFiltered, Description: ptr("rent")},
			" WHERE description ILIKE '%' || $1 || '%' ORDER BY id",
			[]any{"rent"},
		},
		{
			"description with date range",
			ledger.Predicate{
				Kind:        ledger.PredicateFiltered,
				Description: ptr("rent"),
				Date:        &ledger.DateFilter{Start: day("2022-01-01"), End: ptr(day("2022-01-31"))},
			},
			" WHERE description ILIKE '%' || $1 || '%' AND transaction_date BETWEEN $2 AND $3 ORDER BY id",
			[]any{"rent", day("2022-01-01"), day("2022-01-31")},
		},
		{
			"account and category with date range",
			ledger.Predicate{
				Kind:       ledger.PredicateFiltered,
				AccountID:  ptr(int64(3)),
				CategoryID: ptr(int64(9)),
				Date:       &ledger.DateFilter{Start: day("2022-01-01"), End: ptr(day("2022-01-31"))},
			},
			" WHERE account_id = $1 AND category_id = $2 AND transaction_date BETWEEN $3 AND $4 ORDER BY id",
			[]any{int64(3), int64(9), day("2022-01-01"), day("2022-01-31")},
		},
		{
			"category with exact date",
			ledger.Predicate{
				Kind:       ledger.PredicateFiltered,
				CategoryID: ptr(int64(9)),
				Date:       &ledger.DateFilter{Start: day("2022-01-01")},
			},
			" WHERE category_id = $1 AND transaction_date = $2 ORDER BY id",
			[]any{int64(9), day("2022-01-01")},
		},
		{
			"expense with recurring date",
			ledger.Predicate{
				Kind:          ledger.PredicateFiltered,
				IsExpense:     ptr(true),
				RecurringDate: ptr(15),
			},
			" WHERE is_expense = $1 AND recurring_date = $2 ORDER BY id",
			[]any{true, 15},
		},
		{
			"recurring flag alone",
			ledger.Predicate{Kind: ledger.PredicateFiltered, IsRecurring: ptr(false)},
			" WHERE is_recurring = $1 ORDER BY id",
			[]any{false},
		},
		{
			"exact amount",
			ledger.Predicate{
				Kind:     ledger.PredicateFiltered,
				Amount:   dec("100.50"),
				AmountOp: ledger.ComparisonExact,
			},
			" WHERE amount = $1 ORDER BY id",
			[]any{*dec("100.50")},
		},
		{
			"amount greater or equal",
			ledger.Predicate{
				Kind:     ledger.PredicateFiltered,
				Amount:   dec("100"),
				AmountOp: ledger.ComparisonGreaterOrEqual,
			},
			" WHERE amount >= $1 ORDER BY id",
			[]any{*dec("100")},
		},
		{
			"amount less or equal",
			ledger.Predicate{
				Kind:     ledger.PredicateFiltered,
				Amount:   dec("100"),
				AmountOp: ledger.ComparisonLessOrEqual,
			},
			" WHERE amount <= $1 ORDER BY id",
			[]any{*dec("100")},
		},
		{
			"amount between",
			ledger.Predicate{
				Kind:      ledger.PredicateFiltered,
				Amount:    dec("100"),
				AmountEnd: dec("200"),
				AmountOp:  ledger.ComparisonBetween,
			},
			" WHERE amount BETWEEN $1 AND $2 ORDER BY id",
			[]any{*dec("100"), *dec("200")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildTransactionQuery(tt.predicate)
			if got := whereClause(t, query); got != tt.wantTail {
				t.Errorf("query tail = %q, want %q", got, tt.wantTail)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
