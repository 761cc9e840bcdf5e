// internal/domain/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func line(name string, price string) Line {
	return Line{
		ProductID: uuid.New(),
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
	}
}

// requireConsistentTotals checks that the snapshot totals always equal
// the sums over the surviving lines.
func requireConsistentTotals(t *testing.T, c *Cart) {
	t.Helper()
	snap := c.Snapshot()

	items := 0
	price := decimal.Zero
	for _, l := range snap.Lines {
		require.GreaterOrEqual(t, l.Quantity, 1, "line %s has quantity < 1", l.Name)
		items += l.Quantity
		price = price.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	require.Equal(t, items, snap.TotalItems)
	require.True(t, price.Equal(snap.TotalPrice),
		"expected total %s, got %s", price, snap.TotalPrice)
}

func TestAddSameProductIncrementsLine(t *testing.T) {
	c := NewCart("sess-1")
	burger := line("X-Burger", "18.90")

	c.AddItem(burger, 1)
	c.AddItem(burger, 1)

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 1)
	require.Equal(t, 2, snap.Lines[0].Quantity)
	requireConsistentTotals(t, c)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	c := NewCart("sess-1")
	c.AddItem(line("Suco de Laranja", "8.00"), 0)
	c.AddItem(line("Água", "4.00"), -5)

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 2)
	require.Equal(t, 1, snap.Lines[0].Quantity)
	require.Equal(t, 1, snap.Lines[1].Quantity)
	requireConsistentTotals(t, c)
}

func TestUpdateQuantityZeroOrBelowRemovesLine(t *testing.T) {
	c := NewCart("sess-1")
	a := line("Coxinha", "6.50")
	b := line("Pastel", "7.00")
	c.AddItem(a, 2)
	c.AddItem(b, 3)

	c.UpdateQuantity(a.ProductID, 0)
	requireConsistentTotals(t, c)
	require.Len(t, c.Snapshot().Lines, 1)

	c.UpdateQuantity(b.ProductID, -3)
	requireConsistentTotals(t, c)
	require.Empty(t, c.Snapshot().Lines)
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := NewCart("sess-1")
	c.AddItem(line("Feijoada", "32.00"), 1)

	c.UpdateQuantity(uuid.New(), 5)

	snap := c.Snapshot()
	require.Len(t, snap.Lines, 1)
	require.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	c := NewCart("sess-1")
	c.AddItem(line("Moqueca", "45.00"), 1)

	c.RemoveItem(uuid.New())

	require.Len(t, c.Snapshot().Lines, 1)
}

func TestTotalsTrackEveryMutation(t *testing.T) {
	c := NewCart("sess-1")
	a := line("X-Burger", "18.90")
	b := line("Batata Frita", "12.00")
	d := line("Refrigerante", "6.00")

	c.AddItem(a, 2)
	requireConsistentTotals(t, c)

	c.AddItem(b, 1)
	requireConsistentTotals(t, c)

	c.AddItem(d, 3)
	requireConsistentTotals(t, c)

	c.UpdateQuantity(b.ProductID, 4)
	requireConsistentTotals(t, c)

	c.RemoveItem(a.ProductID)
	requireConsistentTotals(t, c)

	c.UpdateQuantity(d.ProductID, 0)
	requireConsistentTotals(t, c)

	snap := c.Snapshot()
	require.Equal(t, 4, snap.TotalItems)
	require.True(t, snap.TotalPrice.Equal(decimal.RequireFromString("48.00")))
}

func TestClearEmptiesEverything(t *testing.T) {
	c := NewCart("sess-1")
	c.AddItem(line("Açaí", "15.00"), 2)
	c.AddItem(line("Tapioca", "11.50"), 1)

	c.Clear()

	snap := c.Snapshot()
	require.Empty(t, snap.Lines)
	require.Equal(t, 0, snap.TotalItems)
	require.True(t, snap.TotalPrice.IsZero())
}

func TestSnapshotPreservesInsertionOrder(t *testing.T) {
	c := NewCart("sess-1")
	a := line("Zebra Cake", "9.00")
	b := line("Abacaxi", "5.00")
	d := line("Misto Quente", "10.00")

	c.AddItem(a, 1)
	c.AddItem(b, 1)
	c.AddItem(d, 1)

	// Updates must not re-sort the lines.
	c.UpdateQuantity(b.ProductID, 7)
	c.SetNote(a.ProductID, "sem cobertura")

	snap := c.Snapshot()
	require.Equal(t, []string{"Zebra Cake", "Abacaxi", "Misto Quente"},
		[]string{snap.Lines[0].Name, snap.Lines[1].Name, snap.Lines[2].Name})
}

func TestSetNote(t *testing.T) {
	c := NewCart("sess-1")
	a := line("X-Salada", "19.90")
	c.AddItem(a, 1)

	c.SetNote(a.ProductID, "sem cebola")
	require.Equal(t, "sem cebola", c.Snapshot().Lines[0].Note)

	c.SetNote(a.ProductID, "sem tomate")
	require.Equal(t, "sem tomate", c.Snapshot().Lines[0].Note)

	// Unknown product is ignored.
	c.SetNote(uuid.New(), "extra bacon")
	require.Len(t, c.Snapshot().Lines, 1)
}
