package core

import (
	"context"

	"cobudget-backend-go/internal/models"
)

// SharedCartService defines the interface for shared cart sessions and the
// bill-splitting aggregation.
type SharedCartService interface {
	// CreateSession stores a new session under a fresh short code. An
	// empty (or whitespace) name falls back to the default display name.
	CreateSession(ctx context.Context, name, createdBy string) (*models.SharedCartSession, error)
	// JoinSession resolves a session by its case-normalized code. It is
	// idempotent and never mutates the session; any holder of the code
	// may join.
	JoinSession(ctx context.Context, code string) (*models.SharedCartSession, error)
	// AddItem appends a line item with quantity 1 attributed to the given
	// contributor (anonymous sentinel when empty). Repeated adds of the
	// same product by the same contributor create additional line items;
	// quantities are not merged.
	AddItem(ctx context.Context, code, productID, contributor string) (*models.SharedCartItem, error)
	// ListItems computes the bill-split view: items grouped by
	// contributor, per-contributor subtotals, grand total and advisory
	// over-budget flags. Recomputed from scratch on every call.
	ListItems(ctx context.Context, code string) (*models.BillSplit, error)
	// ClearSession deletes every line item in the session. Partial
	// failure is reported as an error, never as success.
	ClearSession(ctx context.Context, code string) error
}

// CatalogService defines the interface for catalog reads and filtering.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// Filter narrows the catalog by exact category match and/or a
	// case-insensitive substring query across name, category and tags.
	Filter(ctx context.Context, category, query string) ([]*models.Product, error)
}

// BudgetService defines the interface for per-user budget operations.
type BudgetService interface {
	Get(ctx context.Context, userID string) (*models.Budget, error)
	Set(ctx context.Context, userID string, amount float64) (*models.Budget, error)
}

// CartService defines the interface for personal cart operations.
type CartService interface {
	List(ctx context.Context, userID string) ([]*models.CartItem, error)
	Add(ctx context.Context, userID, productID string) (*models.CartItem, error)
	// Remove deletes the first cart document matching owner+productID.
	// Returns false when nothing matched; that is not an error.
	Remove(ctx context.Context, userID, productID string) (bool, error)
}

// RecommendationQuery is the consolidated input for product
// recommendations: free-text prompt, nutrition preferences and an optional
// budget cap. UserID, when known, is recorded in the analytics log.
type RecommendationQuery struct {
	Prompt      string
	Preferences []string
	Budget      float64
	UserID      string
}

// RecommendService defines the interface for product recommendations.
type RecommendService interface {
	Recommend(ctx context.Context, query RecommendationQuery) ([]models.ScoredProduct, error)
}

// RecipeService defines the interface for the recipe generation gateway.
type RecipeService interface {
	GetRecipe(ctx context.Context, prompt string) (string, error)
}

// UserService defines the interface for user profile operations.
type UserService interface {
	// GetOrCreate retrieves a user profile by UID, creating it on first
	// authenticated call. Returns the user and whether it was created.
	GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}
