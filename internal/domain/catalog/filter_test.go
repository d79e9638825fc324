// internal/domain/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxPrice = int64(50000)

func TestFiltersDefaults(t *testing.T) {
	f := NewFilters(testMaxPrice)

	assert.Equal(t, 0, f.ActiveFilterCount())
	min, max := f.PriceRange()
	assert.Equal(t, int64(0), min)
	assert.Equal(t, testMaxPrice, max)
	assert.Empty(t, f.Categories())
	assert.Empty(t, f.Brands())
}

func TestFiltersToggle(t *testing.T) {
	f := NewFilters(testMaxPrice)

	assert.True(t, f.SetBrand("stylehub", true))
	assert.False(t, f.SetBrand("stylehub", true), "re-adding is a no-op")
	assert.True(t, f.SetBrand("premium", true))
	assert.Equal(t, []string{"stylehub", "premium"}, f.Brands())

	assert.True(t, f.SetBrand("stylehub", false))
	assert.False(t, f.SetBrand("stylehub", false), "re-removing is a no-op")
	assert.Equal(t, []string{"premium"}, f.Brands())
}

func TestFiltersActiveCount(t *testing.T) {
	f := NewFilters(testMaxPrice)

	f.SetBrand("stylehub", true)
	f.SetBrand("premium", true)
	assert.Equal(t, 2, f.ActiveFilterCount())

	f.SetCategory("men", true)
	assert.Equal(t, 3, f.ActiveFilterCount())

	f.SetPriceRange(1000, 20000)
	assert.Equal(t, 4, f.ActiveFilterCount())

	f.SetRating(4)
	assert.Equal(t, 5, f.ActiveFilterCount())
}

func TestFiltersLockedCategory(t *testing.T) {
	f := NewLockedFilters("women", testMaxPrice)

	assert.Equal(t, "women", f.LockedCategory())
	assert.Equal(t, []string{"women"}, f.Categories())
	assert.Equal(t, 0, f.ActiveFilterCount(), "the locked category is not an active filter")

	assert.False(t, f.SetCategory("women", false), "locked category cannot be removed")
	assert.Equal(t, []string{"women"}, f.Categories())

	assert.True(t, f.SetCategory("shoes", true))
	assert.Equal(t, 1, f.ActiveFilterCount())

	f.SetBrand("casual", true)
	f.SetRating(4.5)
	f.Clear()

	assert.Equal(t, []string{"women"}, f.Categories(), "Clear keeps the locked category")
	assert.Empty(t, f.Brands())
	assert.Equal(t, 0, f.ActiveFilterCount())
}

func TestFiltersPricePreviewCommit(t *testing.T) {
	f := NewFilters(testMaxPrice)

	f.PreviewPriceRange(1000, 20000)

	min, max := f.PriceRange()
	assert.Equal(t, int64(0), min, "preview does not touch the committed range")
	assert.Equal(t, testMaxPrice, max)
	assert.Equal(t, 0, f.ActiveFilterCount())

	pmin, pmax := f.PreviewedPriceRange()
	assert.Equal(t, int64(1000), pmin)
	assert.Equal(t, int64(20000), pmax)

	f.CommitPriceRange()
	min, max = f.PriceRange()
	assert.Equal(t, int64(1000), min)
	assert.Equal(t, int64(20000), max)
	assert.Equal(t, 1, f.ActiveFilterCount())

	// committing again without a new preview changes nothing
	f.CommitPriceRange()
	min, max = f.PriceRange()
	assert.Equal(t, int64(1000), min)
	assert.Equal(t, int64(20000), max)
}

func TestFiltersPriceClamping(t *testing.T) {
	f := NewFilters(testMaxPrice)

	f.SetPriceRange(30000, 10000)
	min, max := f.PriceRange()
	assert.Equal(t, int64(10000), min, "inverted bounds are reordered")
	assert.Equal(t, int64(30000), max)

	f.SetPriceRange(-500, testMaxPrice+1000)
	min, max = f.PriceRange()
	assert.Equal(t, int64(0), min)
	assert.Equal(t, testMaxPrice, max)
}

func TestFiltersMatches(t *testing.T) {
	products := []Product{
		{ID: "p-1", Category: "men", Brand: "stylehub", Price: 2999, Rating: 4.5},
		{ID: "p-2", Category: "women", Brand: "premium", Price: 8999, Rating: 4.8},
		{ID: "p-3", Category: "men", Brand: "casual", Price: 1999, Rating: 3.9},
	}

	f := NewFilters(testMaxPrice)
	for _, p := range products {
		assert.True(t, f.Matches(p), "empty selection matches everything")
	}

	f.SetCategory("men", true)
	matched := matchIDs(f, products)
	assert.Equal(t, []string{"p-1", "p-3"}, matched)

	f.SetBrand("stylehub", true)
	matched = matchIDs(f, products)
	assert.Equal(t, []string{"p-1"}, matched)

	f.Clear()
	f.SetRating(4)
	matched = matchIDs(f, products)
	assert.Equal(t, []string{"p-1", "p-2"}, matched)

	f.Clear()
	f.SetPriceRange(2000, 5000)
	matched = matchIDs(f, products)
	assert.Equal(t, []string{"p-1"}, matched)
}

func TestFiltersQueryPayload(t *testing.T) {
	f := NewLockedFilters("shoes", testMaxPrice)
	f.SetBrand("athletic", true)
	f.SetPriceRange(5000, 15000)
	f.SetRating(4)

	payload := f.QueryPayload()
	require.Equal(t, []string{"shoes"}, payload.Categories)
	require.Equal(t, []string{"athletic"}, payload.Brands)
	require.Equal(t, [2]int64{5000, 15000}, payload.PriceRange)
	require.Equal(t, 4.0, payload.Rating)
}

func matchIDs(f *Filters, products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
