// internal/domain/order/order_test.go
package order

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/cart"
	"github.com/stretchr/testify/require"
)

func TestItemsFromCartFreezesLines(t *testing.T) {
	c := cart.NewCart("sess-1")
	x := cart.Line{ProductID: uuid.New(), Name: "X-Burger", UnitPrice: decimal.RequireFromString("10.00")}
	y := cart.Line{ProductID: uuid.New(), Name: "Suco", UnitPrice: decimal.RequireFromString("3.50")}
	c.AddItem(x, 2)
	c.AddItem(y, 1)
	c.SetNote(y.ProductID, "sem gelo")

	snapshot := c.Snapshot()
	require.True(t, snapshot.TotalPrice.Equal(decimal.RequireFromString("23.50")))

	items := ItemsFromCart(&snapshot)
	require.Len(t, items, 2)

	require.Equal(t, x.ProductID, *items[0].ProductID)
	require.Equal(t, "X-Burger", items[0].ProductName)
	require.Equal(t, 2, items[0].Quantity)
	require.True(t, items[0].Price.Equal(decimal.RequireFromString("10.00")))

	require.Equal(t, "Suco", items[1].ProductName)
	require.Equal(t, 1, items[1].Quantity)
	require.Equal(t, "sem gelo", items[1].Observations)

	// Mutating the cart afterwards must not touch the frozen copies.
	c.UpdateQuantity(x.ProductID, 9)
	require.Equal(t, 2, items[0].Quantity)
}

func TestStatusSet(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
		require.True(t, IsValidStatus(s))
	}
	require.False(t, IsValidStatus(Status("shipped")))
	require.False(t, IsValidStatus(Status("")))
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReady, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusPreparing, StatusDelivered, false},
		{StatusReady, StatusDelivered, true},
		{StatusReady, StatusCancelled, true},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusPreparing, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusDelivered, false},
	}

	for _, tc := range cases {
		o := &Order{Status: tc.from}
		require.Equal(t, tc.allowed, o.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	n := GenerateOrderNumber()
	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	require.Equal(t, "PED", parts[0])
	require.Len(t, parts[1], 8)
	require.Len(t, parts[2], 6)

	// Consecutive numbers must differ.
	require.NotEqual(t, n, GenerateOrderNumber())
}
