package db

import (
	"context"
	"errors"

	"cobudget-backend-go/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when creating a document whose ID is taken.
var ErrAlreadyExists = errors.New("document already exists")

// ProductRepository defines the interface for catalog storage operations.
// Products are written only by the seeding path; clients read.
type ProductRepository interface {
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	GetAll(ctx context.Context) ([]*models.Product, error)
	Count(ctx context.Context) (int, error)
	CreateAll(ctx context.Context, products []*models.Product) error
}

// BudgetRepository defines the interface for per-user budget storage.
type BudgetRepository interface {
	Get(ctx context.Context, userID string) (*models.Budget, error)
	// Set overwrites the user's budget document. Last write wins.
	Set(ctx context.Context, budget *models.Budget) error
}

// CartRepository defines the interface for personal cart storage.
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) (string, error) // Returns new document ID
	GetByUserID(ctx context.Context, userID string) ([]*models.CartItem, error)
	// DeleteFirstByUserAndProduct removes the first document matching
	// owner+productID. Returns false with a nil error when nothing matched.
	DeleteFirstByUserAndProduct(ctx context.Context, userID, productID string) (bool, error)
}

// SharedCartRepository defines the interface for shared cart sessions and
// their line items (stored as a subcollection of the session document).
type SharedCartRepository interface {
	CreateSession(ctx context.Context, session *models.SharedCartSession) error
	GetSession(ctx context.Context, code string) (*models.SharedCartSession, error)
	AddItem(ctx context.Context, code string, item *models.SharedCartItem) (string, error) // Returns new item ID
	GetItems(ctx context.Context, code string) ([]*models.SharedCartItem, error)
	// DeleteItems removes every item in the session. Partial failure is
	// reported as an error carrying each failed deletion.
	DeleteItems(ctx context.Context, code string) error
}

// RecommendationLogRepository defines the interface for recommendation
// analytics entries. Create-only.
type RecommendationLogRepository interface {
	Create(ctx context.Context, logEntry models.RecommendationLog) error
}

// UserRepository defines the interface for user profile storage.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}
