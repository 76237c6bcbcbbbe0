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

const (
	sharedCartSessionsCollection = "shared_cart_sessions"
	sharedCartItemsSubcollection = "items"
)

// firestoreSharedCartRepository implements the SharedCartRepository interface
// using Firestore. Line items live in an "items" subcollection under each
// session document.
type firestoreSharedCartRepository struct {
	client *firestore.Client
}

// NewFirestoreSharedCartRepository creates a new instance of firestoreSharedCartRepository.
func NewFirestoreSharedCartRepository(client *firestore.Client) SharedCartRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for SharedCartRepository.")
	}
	return &firestoreSharedCartRepository{client: client}
}

func (r *firestoreSharedCartRepository) sessionDoc(code string) *firestore.DocumentRef {
	return r.client.Collection(sharedCartSessionsCollection).Doc(code)
}

// CreateSession stores a session document keyed by its code. Returns
// ErrAlreadyExists when the code is taken, so the caller can regenerate.
func (r *firestoreSharedCartRepository) CreateSession(ctx context.Context, session *models.SharedCartSession) error {
	if session.ID == "" {
		return errors.New("session ID cannot be empty for CreateSession operation")
	}
	_, err := r.sessionDoc(session.ID).Create(ctx, session)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("session with code '%s' already exists: %w", session.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create session '%s': %w", session.ID, err)
	}
	return nil
}

// GetSession retrieves a session document by its code.
func (r *firestoreSharedCartRepository) GetSession(ctx context.Context, code string) (*models.SharedCartSession, error) {
	if code == "" {
		return nil, errors.New("code cannot be empty for GetSession operation")
	}
	docSnap, err := r.sessionDoc(code).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("session with code '%s' not found: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session '%s': %w", code, err)
	}

	var session models.SharedCartSession
	if err := docSnap.DataTo(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session data for code '%s': %w", code, err)
	}
	session.ID = docSnap.Ref.ID

	return &session, nil
}

// AddItem appends a line item to the session's items subcollection with an
// auto-generated ID.
func (r *firestoreSharedCartRepository) AddItem(ctx context.Context, code string, item *models.SharedCartItem) (string, error) {
	if code == "" {
		return "", errors.New("code cannot be empty for AddItem operation")
	}
	docRef := r.sessionDoc(code).Collection(sharedCartItemsSubcollection).NewDoc()
	item.ID = docRef.ID

	if _, err := docRef.Create(ctx, item); err != nil {
		return "", fmt.Errorf("failed to add item to session '%s': %w", code, err)
	}
	return docRef.ID, nil
}

// GetItems retrieves all line items in the session.
func (r *firestoreSharedCartRepository) GetItems(ctx context.Context, code string) ([]*models.SharedCartItem, error) {
	if code == "" {
		return nil, errors.New("code cannot be empty for GetItems operation")
	}

	iter := r.sessionDoc(code).Collection(sharedCartItemsSubcollection).Documents(ctx)
	defer iter.Stop()

	var items []*models.SharedCartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate items for session '%s': %w", code, err)
		}

		var item models.SharedCartItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error decoding shared cart item (ID: %s) in session '%s': %v. Skipping.", doc.Ref.ID, code, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}

	return items, nil
}

// DeleteItems removes every line item in the session. Deletions proceed
// item by item; any failures are collected and returned as one aggregate
// error so a partially-cleared session is never reported as success.
func (r *firestoreSharedCartRepository) DeleteItems(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("code cannot be empty for DeleteItems operation")
	}

	iter := r.sessionDoc(code).Collection(sharedCartItemsSubcollection).Documents(ctx)
	defer iter.Stop()

	var failures []error
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate items for clearing session '%s': %w", code, err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			failures = append(failures, fmt.Errorf("item '%s': %w", doc.Ref.ID, err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("failed to delete %d item(s) in session '%s': %w", len(failures), code, errors.Join(failures...))
	}
	return nil
}
