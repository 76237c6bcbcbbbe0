package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cobudget-backend-go/internal/models"
)

const productsCollection = "products"

// firestoreProductRepository implements the ProductRepository interface using Firestore.
type firestoreProductRepository struct {
	client *firestore.Client
}

// NewFirestoreProductRepository creates a new instance of firestoreProductRepository.
func NewFirestoreProductRepository(client *firestore.Client) ProductRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProductRepository.")
	}
	return &firestoreProductRepository{client: client}
}

// GetByID retrieves a product document from Firestore by its catalog ID.
func (r *firestoreProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, errors.New("productID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(productsCollection).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("product with ID '%s' not found: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product with ID '%s': %w", productID, err)
	}

	var product models.Product
	if err := docSnap.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product data for ID '%s': %w", productID, err)
	}
	product.ID = docSnap.Ref.ID

	return &product, nil
}

// GetAll retrieves the full catalog. Documents that fail to decode are
// logged and skipped rather than failing the whole listing.
func (r *firestoreProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var products []*models.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var product models.Product
		if err := doc.DataTo(&product); err != nil {
			log.Printf("Error decoding product data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		product.ID = doc.Ref.ID
		products = append(products, &product)
	}

	return products, nil
}

// Count counts the catalog documents. Used to decide whether seeding is needed.
func (r *firestoreProductRepository) Count(ctx context.Context) (int, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate products for counting: %w", err)
		}
		count++
	}
	return count, nil
}

// CreateAll writes the given products in a single batch, using the catalog
// product ID as the document ID.
func (r *firestoreProductRepository) CreateAll(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	for _, p := range products {
		if p.ID == "" {
			return errors.New("product ID cannot be empty for CreateAll operation")
		}
		if _, err := bw.Set(r.client.Collection(productsCollection).Doc(p.ID), p); err != nil {
			return fmt.Errorf("failed to enqueue product '%s' for creation: %w", p.ID, err)
		}
	}
	bw.End()
	return nil
}
