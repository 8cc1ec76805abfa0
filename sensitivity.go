package gobhasha

import "strings"

// Advisory keyword groups checked on the source text before translation.
var sensitivityChecks = []struct {
	words   []string
	warning string
}{
	{
		words:   []string{"pork", "beef", "alcohol"},
		warning: "contains potentially sensitive content - please review cultural appropriateness",
	},
	{
		words:   []string{"christmas", "diwali", "eid", "holi"},
		warning: "contains festival references - ensure timing is appropriate",
	},
	{
		words:   []string{"loan", "debt", "payment", "money"},
		warning: "contains financial terms - ensure compliance with regulations",
	},
}

// SensitivityWarnings returns advisory strings for source text touching
// culturally or legally sensitive topics. Advisories never block the
// pipeline; they ride along with the result.
func SensitivityWarnings(text string) []string {
	lower := strings.ToLower(text)
	var warnings []string
	for _, check := range sensitivityChecks {
		for _, word := range check.words {
			if strings.Contains(lower, word) {
				warnings = append(warnings, check.warning)
				break
			}
		}
	}
	return warnings
}
