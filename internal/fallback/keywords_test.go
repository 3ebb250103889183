package fallback

import (
	"testing"

	"github.com/smartbudget/categorizer/internal/model"
)

func TestCategorizeMatches(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"food delivery", "Swiggy order lunch", "Food & Dining"},
		{"case insensitive", "SWIGGY ORDER", "Food & Dining"},
		{"ride share", "uber trip to office", "Transportation"},
		{"groceries before generic", "BigBasket grocery delivery", "Groceries"},
		{"online shopping", "amazon order electronics", "Shopping"},
		{"streaming", "Netflix monthly", "Entertainment"},
		{"utilities", "electricity board payment", "Bills & Utilities"},
		{"investments", "Zerodha SIP debit", "Investments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Categorize(tt.text)
			if result.Category != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.text, result.Category, tt.want)
			}
			if result.Confidence != MatchConfidence {
				t.Errorf("confidence = %v, want %v", result.Confidence, MatchConfidence)
			}
			if result.Keyword == "" {
				t.Error("matched result must carry the keyword")
			}
		})
	}
}

func TestCategorizeNoMatch(t *testing.T) {
	c := New()
	result := c.Categorize("xyzzy unmatchable gibberish")
	if result.Category != model.CategoryOther {
		t.Errorf("Category = %q, want %q", result.Category, model.CategoryOther)
	}
	if result.Confidence != OtherConfidence {
		t.Errorf("Confidence = %v, want %v", result.Confidence, OtherConfidence)
	}
	if result.Keyword != "" {
		t.Errorf("Keyword = %q, want empty", result.Keyword)
	}
}

func TestFirstMatchWins(t *testing.T) {
	table := []CategoryKeywords{
		{Category: "A", Keywords: []string{"shared"}},
		{Category: "B", Keywords: []string{"shared"}},
	}
	c := NewWithTable(table)
	if got := c.Categorize("shared term").Category; got != "A" {
		t.Errorf("Category = %q, want first entry A", got)
	}
}

func TestDefaultKeywordsCoverCanonicalCategories(t *testing.T) {
	covered := make(map[string]bool)
	for _, entry := range DefaultKeywords() {
		covered[entry.Category] = true
	}
	for _, cat := range model.Categories() {
		if cat == model.CategoryOther {
			continue // Other is the no-match result, not a keyword entry
		}
		if !covered[cat] {
			t.Errorf("category %q has no keyword entry", cat)
		}
	}
}
