// Package model defines the core domain types for transaction categorization.
package model

// CategoryOther is the catch-all category used when nothing else matches.
const CategoryOther = "Other"

// Categories returns the canonical spending categories, in display order.
// The engine is not limited to these (user corrections may introduce new
// labels) but the seed catalogue and the keyword fallback cover exactly
// this set.
func Categories() []string {
	return []string{
		"Food & Dining",
		"Groceries",
		"Transportation",
		"Shopping",
		"Bills & Utilities",
		"Entertainment",
		"Health & Fitness",
		"Education",
		"Travel",
		"Personal Care",
		"Investments",
		CategoryOther,
	}
}
