package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cobudget-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document. The user.ID (Firebase Auth UID) is used
// as the Firestore document ID.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with ID '%s' already exists: %w", user.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// GetByID retrieves a user document by its ID (Firebase Auth UID).
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", userID, err)
	}
	user.ID = docSnap.Ref.ID

	return &user, nil
}

// Update modifies an existing user document. Set with MergeAll allows the
// service to send partial models (e.g. a last-login touch).
func (r *firestoreUserRepository) Update(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user with ID '%s': %w", user.ID, err)
	}
	return nil
}
