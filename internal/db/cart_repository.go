package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cobudget-backend-go/internal/models"
)

const cartCollection = "cart"

// firestoreCartRepository implements the CartRepository interface using Firestore.
type firestoreCartRepository struct {
	client *firestore.Client
}

// NewFirestoreCartRepository creates a new instance of firestoreCartRepository.
func NewFirestoreCartRepository(client *firestore.Client) CartRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CartRepository.")
	}
	return &firestoreCartRepository{client: client}
}

// Create adds a new cart item document with an auto-generated ID. One
// document per physical addition; duplicates of the same product are
// distinct entries.
func (r *firestoreCartRepository) Create(ctx context.Context, item *models.CartItem) (string, error) {
	if item.UserID == "" {
		return "", errors.New("cart item userID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(cartCollection).NewDoc()
	item.ID = docRef.ID

	if _, err := docRef.Create(ctx, item); err != nil {
		return "", fmt.Errorf("failed to create cart item for user '%s': %w", item.UserID, err)
	}
	return docRef.ID, nil
}

// GetByUserID retrieves all cart items owned by a user.
func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) ([]*models.CartItem, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}

	iter := r.client.Collection(cartCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var items []*models.CartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart items for user '%s': %w", userID, err)
		}

		var item models.CartItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error decoding cart item (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}

	return items, nil
}

// DeleteFirstByUserAndProduct locates the remote document via an equality
// query on owner+productID and deletes the first match. When no document
// matches, the delete is a no-op and (false, nil) is returned.
func (r *firestoreCartRepository) DeleteFirstByUserAndProduct(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" || productID == "" {
		return false, errors.New("userID and productID are required for DeleteFirstByUserAndProduct operation")
	}

	iter := r.client.Collection(cartCollection).
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query cart item (user '%s', product '%s'): %w", userID, productID, err)
	}

	if _, err := doc.Ref.Delete(ctx); err != nil {
		return false, fmt.Errorf("failed to delete cart item '%s': %w", doc.Ref.ID, err)
	}
	return true, nil
}
