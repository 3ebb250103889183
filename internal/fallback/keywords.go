// Package fallback provides keyword-based categorization used before any
// model exists and whenever classifier confidence is too low to trust.
package fallback

import (
	"strings"

	"github.com/smartbudget/categorizer/internal/model"
)

const (
	// MatchConfidence is reported for any keyword hit.
	MatchConfidence = 0.5
	// OtherConfidence is reported when nothing matches.
	OtherConfidence = 0.3
)

// CategoryKeywords maps one category to its trigger substrings. Entries
// are evaluated in order; the first matching keyword wins.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Categorizer performs ordered, case-insensitive substring matching
// against a fixed keyword table.
type Categorizer struct {
	table []CategoryKeywords
}

// New creates a categorizer with the default keyword table.
func New() *Categorizer {
	return NewWithTable(DefaultKeywords())
}

// NewWithTable creates a categorizer with a custom table.
func NewWithTable(table []CategoryKeywords) *Categorizer {
	return &Categorizer{table: table}
}

// Result is a fallback categorization outcome.
type Result struct {
	Category   string
	Keyword    string
	Confidence float64
}

// Categorize matches text against the keyword table. A miss is not an
// error: the result is CategoryOther at reduced confidence.
func (c *Categorizer) Categorize(text string) Result {
	lower := strings.ToLower(text)
	for _, entry := range c.table {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return Result{
					Category:   entry.Category,
					Keyword:    kw,
					Confidence: MatchConfidence,
				}
			}
		}
	}
	return Result{
		Category:   model.CategoryOther,
		Confidence: OtherConfidence,
	}
}
