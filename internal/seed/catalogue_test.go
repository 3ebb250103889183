package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbudget/categorizer/internal/model"
)

func TestCatalogueCoversEveryCategory(t *testing.T) {
	seen := make(map[string]int)
	for _, ex := range Catalogue() {
		seen[ex.Category]++
	}

	for _, cat := range model.Categories() {
		assert.GreaterOrEqual(t, seen[cat], 2, "category %q needs at least two seed examples", cat)
	}
	// No stray labels outside the canonical set
	assert.Len(t, seen, len(model.Categories()))
}

func TestCatalogueExamplesAreValid(t *testing.T) {
	catalogue := Catalogue()
	require.NotEmpty(t, catalogue)

	for _, ex := range catalogue {
		assert.NoError(t, ex.Validate(), "seed example %q", ex.Description)
		assert.Positive(t, ex.Amount, "seed example %q", ex.Description)
	}
}

func TestCatalogueReturnsFreshSlice(t *testing.T) {
	a := Catalogue()
	a[0].Category = "tampered"
	b := Catalogue()
	assert.NotEqual(t, "tampered", b[0].Category)
}
