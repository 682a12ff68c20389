package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PredicateKind distinguishes the full scan and the degenerate
// no-predicate case from compiled filters.
type PredicateKind int

const (
	// PredicateAll is the unfiltered full scan.
	PredicateAll PredicateKind = iota
	// PredicateFiltered carries one compiled combination of the
	// optional fields below.
	PredicateFiltered
	// PredicateNone is produced when the amount family resolves to an
	// unrecognized comparison; it matches nothing.
	PredicateNone
)

// DateFilter is a compiled date condition. A nil End means exact-date
// match on Start, otherwise the match is inclusive between Start and
// End.
type DateFilter struct {
	Start time.Time
	End   *time.Time
}

// Predicate is the single concrete store query compiled for a request.
// Only the fields honored by the selected family are set; the store
// ANDs every set field.
type Predicate struct {
	Kind          PredicateKind
	Description   *string
	Date          *DateFilter
	AccountID     *int64
	CategoryID    *int64
	IsExpense     *bool
	IsRecurring   *bool
	RecurringDate *int
	Amount        *decimal.Decimal
	AmountEnd     *decimal.Decimal
	AmountOp      AmountComparison
}

// Compile turns the criteria into the one predicate for the selected
// family. Parameters outside the family are not consulted, except the
// date bounds, which embed into the description and account/category
// families.
func Compile(c *Criteria, family Family) Predicate {
	switch family {
	case FamilyDescription:
		return Predicate{
			Kind:        PredicateFiltered,
			Description: c.Description,
			Date:        compileDate(c),
		}
	case FamilyAccountCategory:
		return Predicate{
			Kind:       PredicateFiltered,
			AccountID:  c.AccountID,
			CategoryID: c.CategoryID,
			Date:       compileDate(c),
		}
	case FamilyDate:
		return Predicate{Kind: PredicateFiltered, Date: compileDate(c)}
	case FamilyFlags:
		return compileFlags(c)
	case FamilyAmount:
		return compileAmount(c)
	}
	return Predicate{Kind: PredicateAll}
}

func compileDate(c *Criteria) *DateFilter {
	if c.StartDate == nil {
		return nil
	}
	return &DateFilter{Start: *c.StartDate, End: c.EndDate}
}

// compileFlags resolves the nested recurring/expense combination. When
// is-recurring, is-expense and recurring-date are all supplied, the
// compiled predicate is expense+recurringDate and the is_recurring
// condition is not part of the filter. That narrowing is long-standing
// observable behavior and is pinned by a regression test; do not "fix"
// it without a contract change.
func compileFlags(c *Criteria) Predicate {
	p := Predicate{Kind: PredicateFiltered}
	switch {
	case c.IsRecurring != nil:
		switch {
		case c.IsExpense != nil && c.RecurringDate != nil:
			p.IsExpense = c.IsExpense
			p.RecurringDate = c.RecurringDate
		case c.IsExpense != nil:
			p.IsRecurring = c.IsRecurring
			p.IsExpense = c.IsExpense
		case c.RecurringDate != nil:
			p.RecurringDate = c.RecurringDate
		default:
			p.IsRecurring = c.IsRecurring
		}
	case c.IsExpense != nil:
		p.IsExpense = c.IsExpense
		if c.RecurringDate != nil {
			p.RecurringDate = c.RecurringDate
		}
	default:
		p.RecurringDate = c.RecurringDate
	}
	return p
}

func compileAmount(c *Criteria) Predicate {
	op := resolveAmountComparison(c)
	if op == ComparisonUnrecognized {
		return Predicate{Kind: PredicateNone}
	}
	p := Predicate{Kind: PredicateFiltered, Amount: c.StartAmount, AmountOp: op}
	if op == ComparisonBetween {
		p.AmountEnd = c.EndAmount
	}
	return p
}
