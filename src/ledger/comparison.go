package ledger

import "strings"

// AmountComparison is the closed set of amount predicates the engine
// can compile. ComparisonUnrecognized means the free-text hint matched
// none of the known tokens; the amount family then produces no
// predicate and the request resolves to the empty-result rejection
// rather than a validation failure.
type AmountComparison int

const (
	ComparisonExact AmountComparison = iota
	ComparisonGreaterOrEqual
	ComparisonLessOrEqual
	ComparisonBetween
	ComparisonUnrecognized
)

func (c AmountComparison) String() string {
	switch c {
	case ComparisonGreaterOrEqual:
		return "greater-or-equal"
	case ComparisonLessOrEqual:
		return "less-or-equal"
	case ComparisonBetween:
		return "between"
	case ComparisonUnrecognized:
		return "unrecognized"
	}
	return "exact"
}

// ParseAmountComparison normalizes a free-text comparison hint.
// Matching is case-insensitive and substring-based, checked in the
// order greater, lesser, equal, so "greater or equal" resolves to
// greater-or-equal.
func ParseAmountComparison(hint string) AmountComparison {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "greater"):
		return ComparisonGreaterOrEqual
	case strings.Contains(h, "lesser"):
		return ComparisonLessOrEqual
	case strings.Contains(h, "equal"):
		return ComparisonExact
	}
	return ComparisonUnrecognized
}

// resolveAmountComparison picks the amount predicate for criteria whose
// start amount is present. An end amount always wins over the hint;
// with neither end amount nor hint the match is exact.
func resolveAmountComparison(c *Criteria) AmountComparison {
	if c.EndAmount != nil {
		return ComparisonBetween
	}
	if c.AmountComparison != nil {
		return ParseAmountComparison(*c.AmountComparison)
	}
	return ComparisonExact
}
