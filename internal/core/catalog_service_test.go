package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobudget-backend-go/internal/models"
)

func TestListProductsDropsMalformedDocuments(t *testing.T) {
	repo := newFakeProductRepo(
		&models.Product{ID: "DB001", Name: "Amul Fresh Milk", Price: 60, Category: "Dairy & Bakery", InStock: true},
		&models.Product{ID: "BAD001", Name: "", Price: 10, Category: "Dairy & Bakery"},
		&models.Product{ID: "BAD002", Name: "Negative", Price: -5, Category: "Dairy & Bakery"},
	)
	svc := NewCatalogService(repo)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "DB001", products[0].ID)
}

func TestFilterByCategory(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	products, err := svc.Filter(context.Background(), "Dairy & Bakery", "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Dairy & Bakery", p.Category)
	}
}

func TestFilterByQueryMatchesNameCategoryAndTags(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	byName, err := svc.Filter(context.Background(), "", "MILK")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "DB001", byName[0].ID)

	byTag, err := svc.Filter(context.Background(), "", "banana")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "FV001", byTag[0].ID)

	byCategory, err := svc.Filter(context.Background(), "", "fruits")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "FV001", byCategory[0].ID)
}

func TestFilterEmptyFiltersReturnEverything(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	products, err := svc.Filter(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestFilterNoMatches(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	products, err := svc.Filter(context.Background(), "", "quinoa")
	require.NoError(t, err)
	assert.Empty(t, products)
}
