package cart_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiqayaMahmood/foodeez-0909/pkg/cart"
)

func pizza() cart.Item {
	return cart.Item{ID: "7", Name: "Margherita", Price: 10.00, BusinessID: "42"}
}

func dessert() cart.Item {
	return cart.Item{ID: "9", Name: "Tiramisu", Price: 5.50, BusinessID: "42"}
}

// totalsMatchLines asserts the derived totals equal a full recompute over the
// line list, whatever sequence of mutations came before.
func totalsMatchLines(t *testing.T, store *cart.Store) {
	t.Helper()
	items := 0
	price := 0.0
	for _, line := range store.Items() {
		items += line.Quantity
		price += line.Price * float64(line.Quantity)
	}
	assert.Equal(t, items, store.TotalItems())
	assert.InDelta(t, price, store.TotalPrice(), 1e-9)
}

func TestAddToCart(t *testing.T) {
	store := cart.NewStore(nil)

	store.AddToCart(pizza())
	store.AddToCart(pizza())
	store.AddToCart(dessert())

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, store.TotalItems())
	assert.InDelta(t, 25.50, store.TotalPrice(), 1e-9)
	totalsMatchLines(t, store)
}

func TestUpdateQuantity(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddToCart(pizza())
	store.AddToCart(dessert())

	store.UpdateQuantity("7", 4)
	totalsMatchLines(t, store)
	assert.Equal(t, 5, store.TotalItems())

	// Zero or negative quantity removes the line entirely
	store.UpdateQuantity("7", 0)
	require.Len(t, store.Items(), 1)
	totalsMatchLines(t, store)

	// Re-adding a removed product starts back at quantity 1
	store.AddToCart(pizza())
	items := store.Items()
	require.Len(t, items, 2)
	for _, line := range items {
		if line.ID == "7" {
			assert.Equal(t, 1, line.Quantity)
		}
	}
	totalsMatchLines(t, store)
}

func TestRemoveFromCartAndClear(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddToCart(pizza())
	store.AddToCart(dessert())

	store.RemoveFromCart("9")
	require.Len(t, store.Items(), 1)
	totalsMatchLines(t, store)

	store.ClearCart()
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestTotalsInvariantAcrossMutations(t *testing.T) {
	store := cart.NewStore(nil)

	store.AddToCart(pizza())
	store.AddToCart(pizza())
	store.AddToCart(dessert())
	store.UpdateQuantity("9", 3)
	store.RemoveFromCart("7")
	store.AddToCart(pizza())
	store.UpdateQuantity("7", 2)

	totalsMatchLines(t, store)
}

func TestPersistenceRecomputesTotalsOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := cart.NewFileStorage(path)

	store := cart.NewStore(storage)
	store.AddToCart(pizza())
	store.AddToCart(pizza())
	store.AddToCart(dessert())

	// A second store over the same file sees the persisted lines with totals
	// recomputed from them, not read back from the snapshot
	reloaded := cart.NewStore(storage)
	require.Len(t, reloaded.Items(), 2)
	assert.Equal(t, 3, reloaded.TotalItems())
	assert.InDelta(t, 25.50, reloaded.TotalPrice(), 1e-9)
	totalsMatchLines(t, reloaded)
}

func TestLoadFromMissingFileStartsEmpty(t *testing.T) {
	storage := cart.NewFileStorage(filepath.Join(t.TempDir(), "missing.json"))

	store := cart.NewStore(storage)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
}
