// internal/domain/listing/orchestrator.go
package listing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/pkg/pagination"
)

// State describes what the listing should render.
type State int

const (
	// StateLoading: a request is in flight and no result has resolved yet.
	StateLoading State = iota
	// StateReady: the last issued request resolved; zero items is a valid
	// ready state, distinct from loading.
	StateReady
	// StateError: the last issued request failed.
	StateError
)

// ProductQuery is the remote product-query collaborator contract.
type ProductQuery interface {
	List(ctx context.Context, search string) ([]catalog.Product, error)
	ListFiltered(ctx context.Context, payload catalog.QueryPayload) ([]catalog.Product, error)
}

// PageParam mirrors the current page into the surrounding navigation context
// (the URL query parameter in a browser). May be nil.
type PageParam interface {
	Get() int
	Set(page int)
}

// Orchestrator composes the filter state, the pagination calculator and the
// remote product query into the rendered product page. Filter mutations
// reset pagination to page 1 and re-request.
//
// Responses are sequenced: every issued request carries a monotonically
// increasing sequence number and a response older than the newest issued
// request is discarded, so the rendered result always matches the most
// recently issued request rather than the most recently resolved one.
type Orchestrator struct {
	mu        sync.Mutex
	filters   *catalog.Filters
	pager     *pagination.Paginator
	query     ProductQuery
	pageParam PageParam
	log       *logrus.Logger

	search  string
	seq     uint64
	results []catalog.Product
	state   State
	err     error
}

// NewOrchestrator creates a listing orchestrator. The initial page is taken
// from the page parameter when one is present.
func NewOrchestrator(filters *catalog.Filters, query ProductQuery, pageParam PageParam, cfg config.CatalogConfig, log *logrus.Logger) *Orchestrator {
	pager := pagination.New(cfg.PageSize, cfg.PaginationDelta)

	o := &Orchestrator{
		filters:   filters,
		pager:     pager,
		query:     query,
		pageParam: pageParam,
		log:       log,
		state:     StateLoading,
	}

	if pageParam != nil {
		if page := pageParam.Get(); page > 1 {
			// Totals are unknown before the first fetch; trust the parameter
			// and let SetTotal clamp it afterwards.
			o.restorePage(page)
		}
	}

	return o
}

func (o *Orchestrator) restorePage(page int) {
	o.pager.SetTotal(page * o.pager.PageSize())
	o.pager.SetPage(page)
}

// Refresh re-requests products for the current search text and committed
// filter state.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	o.mu.Lock()
	o.seq++
	seq := o.seq
	o.state = StateLoading
	search := o.search
	filtered := o.filters.ActiveFilterCount() > 0 || o.filters.LockedCategory() != ""
	payload := o.filters.QueryPayload()
	o.mu.Unlock()

	var (
		products []catalog.Product
		err      error
	)
	if filtered {
		products, err = o.query.ListFiltered(ctx, payload)
	} else {
		products, err = o.query.List(ctx, search)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if seq != o.seq {
		o.log.WithFields(logrus.Fields{"stale_seq": seq, "current_seq": o.seq}).
			Debug("Dropping stale product query response")
		return nil
	}

	if err != nil {
		o.state = StateError
		o.err = err
		return err
	}

	// The backend may return a broader set than requested; the matching
	// semantics are applied here, not in the filter model.
	matched := products[:0:0]
	for _, p := range products {
		if o.filters.Matches(p) {
			matched = append(matched, p)
		}
	}

	o.results = matched
	o.pager.SetTotal(len(matched))
	o.syncPageParam()
	o.state = StateReady
	o.err = nil

	return nil
}

// Search sets the search text, resets to page 1 and re-requests.
func (o *Orchestrator) Search(ctx context.Context, text string) error {
	o.mu.Lock()
	o.search = text
	o.resetPage()
	o.mu.Unlock()

	return o.Refresh(ctx)
}

// SetCategory toggles a category filter and re-requests from page 1.
func (o *Orchestrator) SetCategory(ctx context.Context, id string, included bool) error {
	o.mu.Lock()
	changed := o.filters.SetCategory(id, included)
	if changed {
		o.resetPage()
	}
	o.mu.Unlock()

	if !changed {
		return nil
	}
	return o.Refresh(ctx)
}

// SetBrand toggles a brand filter and re-requests from page 1.
func (o *Orchestrator) SetBrand(ctx context.Context, id string, included bool) error {
	o.mu.Lock()
	changed := o.filters.SetBrand(id, included)
	if changed {
		o.resetPage()
	}
	o.mu.Unlock()

	if !changed {
		return nil
	}
	return o.Refresh(ctx)
}

// SetPriceRange commits a price range and re-requests from page 1.
func (o *Orchestrator) SetPriceRange(ctx context.Context, min, max int64) error {
	o.mu.Lock()
	o.filters.SetPriceRange(min, max)
	o.resetPage()
	o.mu.Unlock()

	return o.Refresh(ctx)
}

// PreviewPriceRange records a live price range without touching the query.
func (o *Orchestrator) PreviewPriceRange(min, max int64) {
	o.mu.Lock()
	o.filters.PreviewPriceRange(min, max)
	o.mu.Unlock()
}

// CommitPriceRange commits the previewed price range and re-requests from
// page 1.
func (o *Orchestrator) CommitPriceRange(ctx context.Context) error {
	o.mu.Lock()
	o.filters.CommitPriceRange()
	o.resetPage()
	o.mu.Unlock()

	return o.Refresh(ctx)
}

// SetRating sets the minimum rating threshold and re-requests from page 1.
func (o *Orchestrator) SetRating(ctx context.Context, value float64) error {
	o.mu.Lock()
	o.filters.SetRating(value)
	o.resetPage()
	o.mu.Unlock()

	return o.Refresh(ctx)
}

// ClearFilters resets the filter state (keeping any locked category) and
// re-requests from page 1.
func (o *Orchestrator) ClearFilters(ctx context.Context) error {
	o.mu.Lock()
	o.filters.Clear()
	o.resetPage()
	o.mu.Unlock()

	return o.Refresh(ctx)
}

// SetPage jumps to a page; out-of-range requests are rejected.
func (o *Orchestrator) SetPage(page int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.pager.SetPage(page) {
		return false
	}
	o.syncPageParam()
	return true
}

// NextPage advances a page; rejected on the last page.
func (o *Orchestrator) NextPage() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.pager.Next() {
		return false
	}
	o.syncPageParam()
	return true
}

// PrevPage steps back a page; rejected on page 1.
func (o *Orchestrator) PrevPage() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.pager.Prev() {
		return false
	}
	o.syncPageParam()
	return true
}

// PageItems returns the products for the current page.
func (o *Orchestrator) PageItems() []catalog.Product {
	o.mu.Lock()
	defer o.mu.Unlock()

	start, end := o.pager.SliceBounds()
	return append([]catalog.Product(nil), o.results[start:end]...)
}

// TotalMatches returns the number of products matching the current filters.
func (o *Orchestrator) TotalMatches() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pager.TotalItems()
}

// CurrentPage returns the 1-indexed current page.
func (o *Orchestrator) CurrentPage() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pager.Page()
}

// TotalPages returns the page count for the current result set.
func (o *Orchestrator) TotalPages() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pager.TotalPages()
}

// VisiblePages returns the page-number window for the current page.
func (o *Orchestrator) VisiblePages() []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pager.VisiblePages()
}

// State reports whether the listing is loading, ready or errored.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Err returns the last request error, if the listing is in StateError.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Filters exposes the filter state for rendering (active count, selections).
func (o *Orchestrator) Filters() *catalog.Filters {
	return o.filters
}

func (o *Orchestrator) resetPage() {
	o.pager.Reset()
	o.syncPageParam()
}

func (o *Orchestrator) syncPageParam() {
	if o.pageParam != nil {
		o.pageParam.Set(o.pager.Page())
	}
}
