package ledger

// Family identifies the one group of filter parameters honored for a
// request. Families are mutually exclusive; when parameters from
// several families are supplied, the highest-priority one wins and the
// rest are ignored.
type Family int

const (
	FamilyAll Family = iota
	FamilyID
	FamilyDescription
	FamilyAccountCategory
	FamilyDate
	FamilyFlags
	FamilyAmount
)

func (f Family) String() string {
	switch f {
	case FamilyID:
		return "id"
	case FamilyDescription:
		return "description"
	case FamilyAccountCategory:
		return "account-category"
	case FamilyDate:
		return "date"
	case FamilyFlags:
		return "flags"
	case FamilyAmount:
		return "amount"
	}
	return "all"
}

// familyRules is the precedence contract: an ordered decision table
// evaluated top to bottom, first match wins. Keep the order stable;
// callers depend on it.
var familyRules = []struct {
	family  Family
	present func(*Criteria) bool
}{
	{FamilyID, func(c *Criteria) bool { return c.TransactionID != nil }},
	{FamilyDescription, func(c *Criteria) bool { return c.Description != nil }},
	{FamilyAccountCategory, func(c *Criteria) bool { return c.AccountID != nil || c.CategoryID != nil }},
	{FamilyDate, func(c *Criteria) bool { return c.StartDate != nil }},
	{FamilyFlags, func(c *Criteria) bool {
		return c.IsExpense != nil || c.IsRecurring != nil || c.RecurringDate != nil
	}},
	{FamilyAmount, func(c *Criteria) bool { return c.StartAmount != nil }},
}

// SelectFamily picks the single filter family for the given criteria.
// With no filter parameters at all it returns FamilyAll, the
// unfiltered full scan.
func SelectFamily(c *Criteria) Family {
	for _, rule := range familyRules {
		if rule.present(c) {
			return rule.family
		}
	}
	return FamilyAll
}
