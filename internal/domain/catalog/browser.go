// internal/domain/catalog/browser.go
package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FetchFunc lists the available products of a category.
type FetchFunc func(ctx context.Context, categoryID uuid.UUID) ([]Product, error)

// Browser tracks the products of the most recently selected category.
// Category fetches may resolve out of order; the browser applies a
// last-request-wins policy keyed by the most recently initiated request,
// so a slow earlier response can never overwrite a faster later one.
type Browser struct {
	fetch FetchFunc

	mu       sync.Mutex
	seq      uint64
	selected uuid.UUID
	products []Product
	err      error
}

// NewBrowser creates a browser backed by the given fetch function.
func NewBrowser(fetch FetchFunc) *Browser {
	return &Browser{fetch: fetch}
}

// Select initiates a fetch for the given category. The fetch runs in the
// background; its result is applied only while the selection is still the
// newest one. Results from superseded selections are discarded.
func (b *Browser) Select(ctx context.Context, categoryID uuid.UUID) {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.selected = categoryID
	b.mu.Unlock()

	go func() {
		products, err := b.fetch(ctx, categoryID)

		b.mu.Lock()
		defer b.mu.Unlock()
		if seq != b.seq {
			// A newer selection was initiated while this fetch was in
			// flight; discard the stale result.
			return
		}
		b.products = products
		b.err = err
	}()
}

// Current returns the selected category, the products applied for it so
// far and the error of the most recent applied fetch, if any.
func (b *Browser) Current() (uuid.UUID, []Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected, b.products, b.err
}
