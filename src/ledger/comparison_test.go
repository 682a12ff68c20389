package ledger

import "testing"

func TestParseAmountComparison(t *testing.T) {
	tests := []struct {
		hint string
		want AmountComparison
	}{
		{"greater", ComparisonGreaterOrEqual},
		{"GREATER THAN", ComparisonGreaterOrEqual},
		{"is greater", ComparisonGreaterOrEqual},
		{"greater or equal", ComparisonGreaterOrEqual},
		{"lesser", ComparisonLessOrEqual},
		{"lesser-equal", ComparisonLessOrEqual},
		{"LESSER THAN", ComparisonLessOrEqual},
		{"equal", ComparisonExact},
		{"Equals", ComparisonExact},
		{"near", ComparisonUnrecognized},
		{"", ComparisonUnrecognized},
		{"at most", ComparisonUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := ParseAmountComparison(tt.hint); got != tt.want {
				t.Errorf("ParseAmountComparison(%q) = %v, want %v", tt.hint, got, tt.want)
			}
		})
	}
}

func TestResolveAmountComparison(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     AmountComparison
	}{
		{
			"end amount wins over hint",
			Criteria{StartAmount: amount("100"), EndAmount: amount("200"), AmountComparison: ptr("greater")},
			ComparisonBetween,
		},
		{
			"hint alone",
			Criteria{StartAmount: amount("100"), AmountComparison: ptr("lesser")},
			ComparisonLessOrEqual,
		},
		{
			"no end amount and no hint means exact",
			Criteria{StartAmount: amount("100")},
			ComparisonExact,
		},
		{
			"unrecognized hint with no end amount",
			Criteria{StartAmount: amount("100"), AmountComparison: ptr("near")},
			ComparisonUnrecognized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAmountComparison(&tt.criteria); got != tt.want {
				t.Errorf("resolveAmountComparison() = %v, want %v", got, tt.want)
			}
		})
	}
}
