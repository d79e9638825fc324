// internal/domain/catalog/filter.go
package catalog

// Filters holds the user's current category/brand/price/rating selection.
// A Filters value belongs to a single listing context and is not safe for
// concurrent use; the listing orchestrator serializes access to it.
//
// When the listing is scoped to a fixed category (a category page), that
// category is "locked": it is part of the selection from construction, is
// restored by Clear, and cannot be removed through SetCategory.
type Filters struct {
	categories []string
	brands     []string
	priceMin   int64
	priceMax   int64
	rating     float64

	// live price-range preview, not visible to queries until committed
	previewMin int64
	previewMax int64
	previewing bool

	locked   string
	maxPrice int64
}

// NewFilters creates an unscoped filter state with the global price ceiling.
func NewFilters(maxPrice int64) *Filters {
	return &Filters{
		priceMin: 0,
		priceMax: maxPrice,
		maxPrice: maxPrice,
	}
}

// NewLockedFilters creates a filter state scoped to a fixed category.
func NewLockedFilters(category string, maxPrice int64) *Filters {
	f := NewFilters(maxPrice)
	f.locked = category
	f.categories = []string{category}
	return f
}

// SetCategory toggles a category selection. Removing the locked category is
// rejected; the returned bool reports whether the selection changed.
func (f *Filters) SetCategory(id string, included bool) bool {
	if !included && id == f.locked {
		return false
	}
	return toggle(&f.categories, id, included)
}

// SetBrand toggles a brand selection.
func (f *Filters) SetBrand(id string, included bool) bool {
	return toggle(&f.brands, id, included)
}

// SetPriceRange replaces the committed price range. Bounds are ordered and
// clamped to the global [0, max] range.
func (f *Filters) SetPriceRange(min, max int64) {
	f.priceMin, f.priceMax = clampRange(min, max, f.maxPrice)
	f.previewing = false
}

// PreviewPriceRange records a live (uncommitted) price range. Previews do not
// affect Matches, QueryPayload or ActiveFilterCount until committed.
func (f *Filters) PreviewPriceRange(min, max int64) {
	f.previewMin, f.previewMax = clampRange(min, max, f.maxPrice)
	f.previewing = true
}

// CommitPriceRange promotes the current preview to the committed range.
// Without a pending preview it is a no-op.
func (f *Filters) CommitPriceRange() {
	if !f.previewing {
		return
	}
	f.priceMin, f.priceMax = f.previewMin, f.previewMax
	f.previewing = false
}

// PriceRange returns the committed price range.
func (f *Filters) PriceRange() (int64, int64) {
	return f.priceMin, f.priceMax
}

// PreviewedPriceRange returns the range the UI should display: the pending
// preview if one exists, otherwise the committed range.
func (f *Filters) PreviewedPriceRange() (int64, int64) {
	if f.previewing {
		return f.previewMin, f.previewMax
	}
	return f.priceMin, f.priceMax
}

// SetRating sets the minimum rating threshold; 0 means unfiltered.
func (f *Filters) SetRating(value float64) {
	if value < 0 {
		value = 0
	}
	f.rating = value
}

// Rating returns the minimum rating threshold.
func (f *Filters) Rating() float64 {
	return f.rating
}

// Categories returns a copy of the selected category ids in insertion order.
func (f *Filters) Categories() []string {
	return append([]string(nil), f.categories...)
}

// Brands returns a copy of the selected brand ids in insertion order.
func (f *Filters) Brands() []string {
	return append([]string(nil), f.brands...)
}

// LockedCategory returns the context-locked category id, if any.
func (f *Filters) LockedCategory() string {
	return f.locked
}

// ActiveFilterCount counts every non-default selection: categories beyond the
// locked one, each brand, one unit for a narrowed price range and one unit
// for a rating threshold.
func (f *Filters) ActiveFilterCount() int {
	count := 0
	for _, c := range f.categories {
		if c != f.locked {
			count++
		}
	}
	count += len(f.brands)
	if f.priceMin > 0 || f.priceMax < f.maxPrice {
		count++
	}
	if f.rating > 0 {
		count++
	}
	return count
}

// Clear resets to the default state. A locked category survives the reset.
func (f *Filters) Clear() {
	f.categories = nil
	if f.locked != "" {
		f.categories = []string{f.locked}
	}
	f.brands = nil
	f.priceMin = 0
	f.priceMax = f.maxPrice
	f.rating = 0
	f.previewing = false
}

// Matches reports whether a product passes the committed selection. Empty
// category/brand selections mean "no restriction".
func (f *Filters) Matches(p Product) bool {
	if len(f.categories) > 0 && !contains(f.categories, p.Category) {
		return false
	}
	if len(f.brands) > 0 && !contains(f.brands, p.Brand) {
		return false
	}
	if p.Price < f.priceMin || p.Price > f.priceMax {
		return false
	}
	if f.rating > 0 && p.Rating < f.rating {
		return false
	}
	return true
}

// QueryPayload produces the filter request body for the product query
// collaborator, reflecting only committed state.
func (f *Filters) QueryPayload() QueryPayload {
	return QueryPayload{
		Categories: f.Categories(),
		Brands:     f.Brands(),
		PriceRange: [2]int64{f.priceMin, f.priceMax},
		Rating:     f.rating,
	}
}

func toggle(set *[]string, id string, included bool) bool {
	idx := -1
	for i, v := range *set {
		if v == id {
			idx = i
			break
		}
	}
	if included {
		if idx >= 0 {
			return false
		}
		*set = append(*set, id)
		return true
	}
	if idx < 0 {
		return false
	}
	*set = append((*set)[:idx], (*set)[idx+1:]...)
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func clampRange(min, max, ceiling int64) (int64, int64) {
	if min > max {
		min, max = max, min
	}
	if min < 0 {
		min = 0
	}
	if max > ceiling {
		max = ceiling
	}
	return min, max
}
