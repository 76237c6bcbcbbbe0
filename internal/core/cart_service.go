package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// cartService implements the CartService interface.
type cartService struct {
	cartRepo    db.CartRepository
	productRepo db.ProductRepository
}

// NewCartService creates a new CartService instance.
func NewCartService(cr db.CartRepository, pr db.ProductRepository) CartService {
	return &cartService{cartRepo: cr, productRepo: pr}
}

// List returns all of the user's cart items.
func (s *cartService) List(ctx context.Context, userID string) ([]*models.CartItem, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart for user '%s': %w", userID, err)
	}
	if items == nil {
		items = []*models.CartItem{}
	}
	return items, nil
}

// Add resolves the product and appends a cart item snapshotting its fields.
// One document per addition; duplicates of the same product are distinct
// entries and are never mutated in place.
func (s *cartService) Add(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no product with ID '%s'", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to resolve product '%s': %w", productID, err)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Tags:      product.Tags,
		ImageURL:  product.ImageURL,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	if _, err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item for user '%s': %w", userID, err)
	}
	return item, nil
}

// Remove deletes the first cart document matching owner+productID. When no
// document matches, the remote delete is a no-op and false is returned.
func (s *cartService) Remove(ctx context.Context, userID, productID string) (bool, error) {
	removed, err := s.cartRepo.DeleteFirstByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove cart item (user '%s', product '%s'): %w", userID, productID, err)
	}
	return removed, nil
}
