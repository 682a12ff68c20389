// Package ledger resolves transaction query criteria into a single
// store query. Each request selects exactly one filter family by fixed
// precedence, compiles it into one predicate, executes one store read,
// and composes the result.
package ledger

import (
	"context"
	"errors"

	"budget-server/src/models"
)

// ErrNotFound is returned when an exact-id lookup matches nothing.
var ErrNotFound = errors.New("transaction not found")

// ErrNoTransactions is returned when any non-id family yields zero
// records. It is a caller-visible rejection, distinct from ErrNotFound.
var ErrNoTransactions = errors.New("no transactions found")

// Store is the transaction store collaborator. Implementations own
// concurrency control, read consistency and result ordering; the
// engine issues exactly one call per request and does no in-memory
// post-filtering.
type Store interface {
	// FindTransactionByID returns (nil, nil) when the id is absent.
	FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindTransactions(ctx context.Context, p Predicate) ([]models.Transaction, error)
}

// Engine is stateless; a single value is shared across requests.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Find resolves the criteria and returns the matching transactions.
// Outcomes: a one-element result or ErrNotFound for the id family, a
// non-empty list or ErrNoTransactions for every other family.
func (e *Engine) Find(ctx context.Context, c *Criteria) ([]models.Transaction, error) {
	family := SelectFamily(c)
	if family == FamilyID {
		t, err := e.store.FindTransactionByID(ctx, *c.TransactionID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrNotFound
		}
		return []models.Transaction{*t}, nil
	}

	p := Compile(c, family)
	if p.Kind == PredicateNone {
		return nil, ErrNoTransactions
	}
	transactions, err := e.store.FindTransactions(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}
	return transactions, nil
}
