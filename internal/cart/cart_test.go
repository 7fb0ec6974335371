package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beadSet() LineItem {
	return LineItem{
		ID:             "p1",
		Title:          "Bead Set",
		UnitPriceCents: 299,
		ImageURL:       "/a.jpg",
	}
}

func TestApply_AddNewItem(t *testing.T) {
	items := Apply(nil, Add{Item: beadSet()})

	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(299), SubtotalCents(items))
}

func TestApply_AddExistingIncrementsQuantity(t *testing.T) {
	var items []LineItem
	for i := 0; i < 3; i++ {
		items = Apply(items, Add{Item: beadSet()})
	}

	require.Len(t, items, 1, "repeated adds must never duplicate an ID")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, TotalItems(items))
	assert.Equal(t, int64(897), SubtotalCents(items))
}

func TestApply_AddIgnoresIncomingQuantity(t *testing.T) {
	item := beadSet()
	item.Quantity = 50

	items := Apply(nil, Add{Item: item})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = Apply(items, Add{Item: item})
	assert.Equal(t, 2, items[0].Quantity)
}

func TestApply_AddPreservesInsertionOrder(t *testing.T) {
	items := Apply(nil, Add{Item: LineItem{ID: "p1", UnitPriceCents: 100}})
	items = Apply(items, Add{Item: LineItem{ID: "p2", UnitPriceCents: 200}})
	items = Apply(items, Add{Item: LineItem{ID: "p3", UnitPriceCents: 300}})

	// Re-adding p1 must not move it.
	items = Apply(items, Add{Item: LineItem{ID: "p1", UnitPriceCents: 100}})

	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, "p3", items[2].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestApply_IncreaseQty(t *testing.T) {
	items := Apply(nil, Add{Item: beadSet()})
	items = Apply(items, Increase{ID: "p1"})

	assert.Equal(t, 2, items[0].Quantity)
}

func TestApply_IncreaseUnknownIDIsNoOp(t *testing.T) {
	items := Apply(nil, Add{Item: beadSet()})
	before := clone(items)

	items = Apply(items, Increase{ID: "ghost-id"})

	assert.Equal(t, before, items)
}

func TestApply_DecreaseQty(t *testing.T) {
	var items []LineItem
	for i := 0; i < 3; i++ {
		items = Apply(items, Add{Item: beadSet()})
	}

	items = Apply(items, Decrease{ID: "p1"})
	assert.Equal(t, 2, items[0].Quantity)
}

func TestApply_DecreaseAtOneRemovesItem(t *testing.T) {
	items := Apply(nil, Add{Item: beadSet()})
	items = Apply(items, Decrease{ID: "p1"})

	assert.Empty(t, items, "decrementing at quantity 1 must remove the line")
	assert.Equal(t, 0, TotalItems(items))
	assert.Equal(t, int64(0), SubtotalCents(items))
}

func TestApply_DecreaseToEmptyCart(t *testing.T) {
	var items []LineItem
	for i := 0; i < 3; i++ {
		items = Apply(items, Add{Item: beadSet()})
	}

	for i := 0; i < 3; i++ {
		items = Apply(items, Decrease{ID: "p1"})
	}

	assert.Empty(t, items)
	assert.Equal(t, 0, TotalItems(items))
	assert.Equal(t, int64(0), SubtotalCents(items))
}

func TestApply_RemoveItem(t *testing.T) {
	items := Apply(nil, Add{Item: beadSet()})
	items = Apply(items, Add{Item: LineItem{ID: "p2", Title: "Incense", UnitPriceCents: 150}})
	items = Apply(items, Remove{ID: "p1"})

	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, int64(150), SubtotalCents(items))
}

func TestApply_RemoveIgnoresQuantity(t *testing.T) {
	var items []LineItem
	for i := 0; i < 5; i++ {
		items = Apply(items, Add{Item: beadSet()})
	}

	items = Apply(items, Remove{ID: "p1"})
	assert.Empty(t, items)
}

func TestApply_ActionsOnEmptyCartAreNoOps(t *testing.T) {
	for _, action := range []Action{
		Increase{ID: "ghost-id"},
		Decrease{ID: "ghost-id"},
		Remove{ID: "ghost-id"},
	} {
		items := Apply([]LineItem{}, action)
		assert.Empty(t, items)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	original := []LineItem{{ID: "p1", Title: "Bead Set", UnitPriceCents: 299, Quantity: 2}}

	_ = Apply(original, Increase{ID: "p1"})
	assert.Equal(t, 2, original[0].Quantity)

	_ = Apply(original, Decrease{ID: "p1"})
	assert.Equal(t, 2, original[0].Quantity)

	_ = Apply(original, Remove{ID: "p1"})
	require.Len(t, original, 1)
}

func TestApply_QuantityNeverBelowOne(t *testing.T) {
	// Random-ish action mix; every reachable state must keep quantity >= 1.
	var items []LineItem
	actions := []Action{
		Add{Item: beadSet()},
		Add{Item: LineItem{ID: "p2", UnitPriceCents: 150}},
		Decrease{ID: "p1"},
		Decrease{ID: "p1"},
		Add{Item: beadSet()},
		Increase{ID: "p2"},
		Decrease{ID: "p2"},
		Decrease{ID: "p2"},
		Remove{ID: "missing"},
	}

	for _, action := range actions {
		items = Apply(items, action)
		for _, item := range items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
		seen := map[string]bool{}
		for _, item := range items {
			assert.False(t, seen[item.ID], "duplicate ID %s", item.ID)
			seen[item.ID] = true
		}
	}
}

func TestTotals(t *testing.T) {
	items := []LineItem{
		{ID: "p1", UnitPriceCents: 299, Quantity: 3},
		{ID: "p2", UnitPriceCents: 150, Quantity: 1},
	}

	assert.Equal(t, 4, TotalItems(items))
	assert.Equal(t, int64(1047), SubtotalCents(items))

	assert.Equal(t, 0, TotalItems(nil))
	assert.Equal(t, int64(0), SubtotalCents(nil))
}
