package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobudget-backend-go/internal/models"
)

func recommendCatalog() *fakeProductRepo {
	return newFakeProductRepo(
		&models.Product{ID: "DB001", Name: "Amul Fresh Milk", Price: 60, Category: "Dairy & Bakery", Tags: []string{"milk", "dairy", "protein"}, InStock: true},
		&models.Product{ID: "GR001", Name: "Basmati Rice", Price: 250, Category: "Grains & Staples", Tags: []string{"rice", "staple"}, InStock: true},
		&models.Product{ID: "GR002", Name: "Garam Masala", Price: 80, Category: "Grains & Staples", Tags: []string{"spices", "masala"}, InStock: true},
		&models.Product{ID: "SN001", Name: "Potato Chips", Price: 30, Category: "Snacks", Tags: []string{"chips", "snacks"}, InStock: true},
		&models.Product{ID: "SN002", Name: "Chocolate Cake", Price: 450, Category: "Snacks", Tags: []string{"cake", "dessert"}, InStock: false},
	)
}

func TestRecommendRequiresPromptOrPreferences(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	_, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "   "})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRecommendNameMatchOutranksTagMatch(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "milk"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "DB001", results[0].ID)
	assert.GreaterOrEqual(t, results[0].MatchScore, 10)
}

func TestRecommendOccasionExpandsIntoTags(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	// No product mentions "biryani"; rice and spices surface through the
	// occasion expansion.
	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "ingredients for biryani"})
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.Contains(t, ids, "GR001")
	assert.Contains(t, ids, "GR002")
}

func TestRecommendPreferencesOnly(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Preferences: []string{"Protein"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "DB001", results[0].ID)
}

func TestRecommendBudgetCapExcludesExpensiveProducts(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "rice masala", Budget: 100})
	require.NoError(t, err)

	for _, r := range results {
		assert.LessOrEqual(t, r.Price, 100.0)
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	assert.NotContains(t, ids, "GR001") // 250 > 100
	assert.Contains(t, ids, "GR002")
}

func TestRecommendSkipsOutOfStock(t *testing.T) {
	svc := NewRecommendService(recommendCatalog(), &fakeRecommendationLogRepo{})

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "cake"})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, "SN002", r.ID)
	}
}

func TestRecommendCapsResultCount(t *testing.T) {
	products := make([]*models.Product, 0, 20)
	for i := 0; i < 20; i++ {
		products = append(products, &models.Product{
			ID:       fmt.Sprintf("SN%03d", i),
			Name:     fmt.Sprintf("Masala Snack %d", i),
			Price:    float64(10 + i),
			Category: "Snacks",
			Tags:     []string{"snacks"},
			InStock:  true,
		})
	}
	svc := NewRecommendService(newFakeProductRepo(products...), &fakeRecommendationLogRepo{})

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "masala"})
	require.NoError(t, err)
	assert.Len(t, results, maxRecommendations)

	// Equal scores are ordered cheapest first.
	for i := 1; i < len(results); i++ {
		if results[i-1].MatchScore == results[i].MatchScore {
			assert.LessOrEqual(t, results[i-1].Price, results[i].Price)
		}
	}
}

func TestRecommendLogsQuery(t *testing.T) {
	logRepo := &fakeRecommendationLogRepo{}
	svc := NewRecommendService(recommendCatalog(), logRepo)

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "milk", UserID: "user-1"})
	require.NoError(t, err)

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, "user-1", logRepo.entries[0].UserID)
	assert.Equal(t, "milk", logRepo.entries[0].Prompt)
	assert.Equal(t, len(results), logRepo.entries[0].ResultsCount)
}

func TestRecommendLogFailureDoesNotFailQuery(t *testing.T) {
	logRepo := &fakeRecommendationLogRepo{createErr: errors.New("firestore unavailable")}
	svc := NewRecommendService(recommendCatalog(), logRepo)

	results, err := svc.Recommend(context.Background(), RecommendationQuery{Prompt: "milk"})
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}
