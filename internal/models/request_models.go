package models

// CreateSharedCartRequest is the body of POST /api/shared-cart/create.
type CreateSharedCartRequest struct {
	Name string `json:"name"`
}

// AddSharedCartItemRequest is the body of POST /api/shared-cart/:sessionId/add.
// UserEmail is optional; an empty value falls back to AnonymousContributor.
type AddSharedCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	UserEmail string `json:"user_email"`
}

// SetBudgetRequest is the body of POST /api/budget.
type SetBudgetRequest struct {
	Amount float64 `json:"amount"`
}

// AddCartItemRequest is the body of POST /api/cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// RecommendRequest is the body of POST /api/recommend. It consolidates the
// keyword, nutrition-preference and budget-capped recommendation entry
// points into a single query.
type RecommendRequest struct {
	Prompt      string   `json:"prompt"`
	Preferences []string `json:"preferences"`
	Budget      float64  `json:"budget"`
}

// RecipeRequest is the body of POST /api/recipe-bot.
type RecipeRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
