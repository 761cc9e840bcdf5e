// internal/domain/catalog/browser_test.go
package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// blockingFetch resolves each category's fetch only when its gate
// channel is closed, so tests can force out-of-order completion.
type blockingFetch struct {
	gates   map[uuid.UUID]chan struct{}
	results map[uuid.UUID][]Product
}

func newBlockingFetch() *blockingFetch {
	return &blockingFetch{
		gates:   make(map[uuid.UUID]chan struct{}),
		results: make(map[uuid.UUID][]Product),
	}
}

func (f *blockingFetch) add(categoryID uuid.UUID, products []Product) {
	f.gates[categoryID] = make(chan struct{})
	f.results[categoryID] = products
}

func (f *blockingFetch) fetch(ctx context.Context, categoryID uuid.UUID) ([]Product, error) {
	<-f.gates[categoryID]
	return f.results[categoryID], nil
}

func (f *blockingFetch) release(categoryID uuid.UUID) {
	close(f.gates[categoryID])
}

func productNames(products []Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestBrowserDiscardsStaleResponse(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	fetch := newBlockingFetch()
	fetch.add(catA, []Product{{ID: uuid.New(), Name: "Feijoada", CategoryID: catA}})
	fetch.add(catB, []Product{{ID: uuid.New(), Name: "Caipirinha", CategoryID: catB}})

	browser := NewBrowser(fetch.fetch)

	// Select A, then B before A's fetch resolves.
	browser.Select(context.Background(), catA)
	browser.Select(context.Background(), catB)

	// B resolves first and is applied.
	fetch.release(catB)
	require.Eventually(t, func() bool {
		_, products, _ := browser.Current()
		return len(products) == 1 && products[0].Name == "Caipirinha"
	}, 2*time.Second, 5*time.Millisecond)

	// A resolves late; its result must be discarded.
	fetch.release(catA)
	time.Sleep(50 * time.Millisecond)

	selected, products, err := browser.Current()
	require.NoError(t, err)
	require.Equal(t, catB, selected)
	require.Equal(t, []string{"Caipirinha"}, productNames(products))
}

func TestBrowserAppliesNewestResult(t *testing.T) {
	catA := uuid.New()
	fetch := newBlockingFetch()
	fetch.add(catA, []Product{
		{ID: uuid.New(), Name: "Moqueca", CategoryID: catA},
		{ID: uuid.New(), Name: "Pastel", CategoryID: catA},
	})

	browser := NewBrowser(fetch.fetch)
	browser.Select(context.Background(), catA)
	fetch.release(catA)

	require.Eventually(t, func() bool {
		_, products, _ := browser.Current()
		return len(products) == 2
	}, 2*time.Second, 5*time.Millisecond)

	selected, products, err := browser.Current()
	require.NoError(t, err)
	require.Equal(t, catA, selected)
	require.Equal(t, []string{"Moqueca", "Pastel"}, productNames(products))
}
