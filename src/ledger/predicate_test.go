package ledger

import (
	"testing"
)

func TestCompileDescription(t *testing.T) {
	t.Run("description alone", func(t *testing.T) {
		c := Criteria{Description: ptr("rent")}
		p := Compile(&c, FamilyDescription)
		if p.Kind != PredicateFiltered {
			t.Fatalf("Kind = %v, want PredicateFiltered", p.Kind)
		}
		if p.Description == nil || *p.Description != "rent" {
			t.Errorf("Description = %v, want rent", p.Description)
		}
		if p.Date != nil {
			t.Errorf("Date = %+v, want nil", p.Date)
		}
	})

	t.Run("description with exact date", func(t *testing.T) {
		c := Criteria{Description: ptr("rent"), StartDate: date("2022-01-01")}
		p := Compile(&c, FamilyDescription)
		if p.Date == nil || p.Date.End != nil {
			t.Fatalf("Date = %+v, want exact-date filter", p.Date)
		}
		if !p.Date.Start.Equal(*date("2022-01-01")) {
			t.Errorf("Date.Start = %v, want 2022-01-01", p.Date.Start)
		}
	})

	t.Run("description with date range", func(t *testing.T) {
		c := Criteria{Description: ptr("rent"), StartDate: date("2022-01-01"), EndDate: date("2022-01-31")}
		p := Compile(&c, FamilyDescription)
		if p.Date == nil || p.Date.End == nil {
			t.Fatalf("Date = %+v, want between filter", p.Date)
		}
	})
}

func TestCompileAccountCategory(t *testing.T) {
	tests := []struct {
		name         string
		criteria     Criteria
		wantAccount  bool
		wantCategory bool
		wantBetween  bool
	}{
		{
			"both ids with date range",
			Criteria{AccountID: ptr(int64(3)), CategoryID: ptr(int64(9)),
				StartDate: date("2022-01-01"), EndDate: date("2022-01-31")},
			true, true, true,
		},
		{
			"account id alone",
			Criteria{AccountID: ptr(int64(3))},
			true, false, false,
		},
		{
			"category id with exact date",
			Criteria{CategoryID: ptr(int64(9)), StartDate: date("2022-01-01")},
			false, true, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(&tt.criteria, FamilyAccountCategory)
			if (p.AccountID != nil) != tt.wantAccount {
				t.Errorf("AccountID set = %v, want %v", p.AccountID != nil, tt.wantAccount)
			}
			if (p.CategoryID != nil) != tt.wantCategory {
				t.Errorf("CategoryID set = %v, want %v", p.CategoryID != nil, tt.wantCategory)
			}
			if tt.wantBetween && (p.Date == nil || p.Date.End == nil) {
				t.Errorf("Date = %+v, want between filter", p.Date)
			}
		})
	}
}

func TestCompileDate(t *testing.T) {
	t.Run("start date alone compiles to exact match", func(t *testing.T) {
		c := Criteria{StartDate: date("2022-01-01")}
		p := Compile(&c, FamilyDate)
		if p.Date == nil || p.Date.End != nil {
			t.Fatalf("Date = %+v, want exact-date filter", p.Date)
		}
	})

	t.Run("both bounds compile to between", func(t *testing.T) {
		c := Criteria{StartDate: date("2022-01-01"), EndDate: date("2022-01-31")}
		p := Compile(&c, FamilyDate)
		if p.Date == nil || p.Date.End == nil {
			t.Fatalf("Date = %+v, want between filter", p.Date)
		}
	})
}

func TestCompileFlags(t *testing.T) {
	tests := []struct {
		name              string
		criteria          Criteria
		wantIsExpense     bool
		wantIsRecurring   bool
		wantRecurringDate bool
	}{
		// With all three flags supplied the compiled predicate is
		// expense+recurringDate; is_recurring is dropped. Pinned on
		// purpose, see compileFlags.
		{
			"all three flags drop is_recurring",
			Criteria{IsRecurring: ptr(true), IsExpense: ptr(true), RecurringDate: ptr(15)},
			true, false, true,
		},
		{
			"recurring and expense without recurring date",
			Criteria{IsRecurring: ptr(true), IsExpense: ptr(false)},
			true, true, false,
		},
		{
			"recurring with recurring date",
			Criteria{IsRecurring: ptr(true), RecurringDate: ptr(15)},
			false, false, true,
		},
		{
			"recurring alone",
			Criteria{IsRecurring: ptr(false)},
			false, true, false,
		},
		{
			"expense with recurring date",
			Criteria{IsExpense: ptr(true), RecurringDate: ptr(1)},
			true, false, true,
		},
		{
			"expense alone",
			Criteria{IsExpense: ptr(true)},
			true, false, false,
		},
		{
			"recurring date alone",
			Criteria{RecurringDate: ptr(28)},
			false, false, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(&tt.criteria, FamilyFlags)
			if p.Kind != PredicateFiltered {
				t.Fatalf("Kind = %v, want PredicateFiltered", p.Kind)
			}
			if (p.IsExpense != nil) != tt.wantIsExpense {
				t.Errorf("IsExpense set = %v, want %v", p.IsExpense != nil, tt.wantIsExpense)
			}
			if (p.IsRecurring != nil) != tt.wantIsRecurring {
				t.Errorf("IsRecurring set = %v, want %v", p.IsRecurring != nil, tt.wantIsRecurring)
			}
			if (p.RecurringDate != nil) != tt.wantRecurringDate {
				t.Errorf("RecurringDate set = %v, want %v", p.RecurringDate != nil, tt.wantRecurringDate)
			}
		})
	}
}

func TestCompileAmount(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		wantKind PredicateKind
		wantOp   AmountComparison
	}{
		{
			"between overrides hint",
			Criteria{StartAmount: amount("100"), EndAmount: amount("200"), AmountComparison: ptr("equal")},
			PredicateFiltered, ComparisonBetween,
		},
		{
			"greater hint",
			Criteria{StartAmount: amount("100"), AmountComparison: ptr("greater than")},
			PredicateFiltered, ComparisonGreaterOrEqual,
		},
		{
			"no hint means exact",
			Criteria{StartAmount: amount("100")},
			PredicateFiltered, ComparisonExact,
		},
		{
			"unrecognized hint compiles to no predicate",
			Criteria{StartAmount: amount("100"), AmountComparison: ptr("near")},
			PredicateNone, ComparisonExact,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(&tt.criteria, FamilyAmount)
			if p.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", p.Kind, tt.wantKind)
			}
			if p.Kind == PredicateNone {
				return
			}
			if p.AmountOp != tt.wantOp {
				t.Errorf("AmountOp = %v, want %v", p.AmountOp, tt.wantOp)
			}
			if p.Amount == nil {
				t.Error("Amount = nil, want set")
			}
			if tt.wantOp == ComparisonBetween && p.AmountEnd == nil {
				t.Error("AmountEnd = nil, want set for between")
			}
		})
	}
}

func TestCompileAll(t *testing.T) {
	p := Compile(&Criteria{}, FamilyAll)
	if p.Kind != PredicateAll {
		t.Errorf("Kind = %v, want PredicateAll", p.Kind)
	}
}
