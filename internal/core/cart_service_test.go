package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartSnapshotsProduct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	item, err := svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	assert.Equal(t, "user-1", item.UserID)
	assert.Equal(t, "DB001", item.ProductID)
	assert.Equal(t, "Amul Fresh Milk", item.Name)
	assert.InDelta(t, 60, item.Price, 1e-9)
	assert.Equal(t, "Dairy & Bakery", item.Category)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	_, err := svc.Add(context.Background(), "user-1", "NOPE999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddToCartDuplicatesAreDistinct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	_, err := svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListCartEmptyIsNotNil(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListCartIsScopedToOwner(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	_, err := svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "user-2", "DB002")
	require.NoError(t, err)

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "DB001", items[0].ProductID)
}

func TestRemoveFromCartDeletesOneEntry(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	_, err := svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "user-1", "DB001")
	require.NoError(t, err)

	removed, err := svc.Remove(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRemoveFromCartNoMatchIsNotAnError(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), testCatalog())

	removed, err := svc.Remove(context.Background(), "user-1", "DB001")
	require.NoError(t, err)
	assert.False(t, removed)
}
