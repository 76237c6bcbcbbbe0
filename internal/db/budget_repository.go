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

const budgetsCollection = "budgets"

// firestoreBudgetRepository implements the BudgetRepository interface using Firestore.
type firestoreBudgetRepository struct {
	client *firestore.Client
}

// NewFirestoreBudgetRepository creates a new instance of firestoreBudgetRepository.
func NewFirestoreBudgetRepository(client *firestore.Client) BudgetRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BudgetRepository.")
	}
	return &firestoreBudgetRepository{client: client}
}

// Get retrieves the budget document keyed by the user's UID.
func (r *firestoreBudgetRepository) Get(ctx context.Context, userID string) (*models.Budget, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Get operation")
	}
	docSnap, err := r.client.Collection(budgetsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("budget for user '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get budget for user '%s': %w", userID, err)
	}

	var budget models.Budget
	if err := docSnap.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to decode budget data for user '%s': %w", userID, err)
	}
	budget.UserID = docSnap.Ref.ID

	return &budget, nil
}

// Set overwrites the user's budget document, creating it on first set.
// Concurrent writers follow the store's write order; last write wins.
func (r *firestoreBudgetRepository) Set(ctx context.Context, budget *models.Budget) error {
	if budget.UserID == "" {
		return errors.New("budget userID cannot be empty for Set operation")
	}
	_, err := r.client.Collection(budgetsCollection).Doc(budget.UserID).Set(ctx, budget)
	if err != nil {
		return fmt.Errorf("failed to set budget for user '%s': %w", budget.UserID, err)
	}
	return nil
}
