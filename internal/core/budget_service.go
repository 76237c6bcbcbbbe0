package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// Custom errors for the BudgetService
var (
	ErrBudgetNotFound = errors.New("budget not set")
	ErrInvalidBudget  = errors.New("budget amount must be a non-negative number")
)

// budgetService implements the BudgetService interface.
type budgetService struct {
	budgetRepo db.BudgetRepository
}

// NewBudgetService creates a new BudgetService instance.
func NewBudgetService(br db.BudgetRepository) BudgetService {
	return &budgetService{budgetRepo: br}
}

// Get retrieves the user's budget. ErrBudgetNotFound when never set.
func (s *budgetService) Get(ctx context.Context, userID string) (*models.Budget, error) {
	budget, err := s.budgetRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrBudgetNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get budget for user '%s': %w", userID, err)
	}
	return budget, nil
}

// Set validates and overwrites the user's budget. Created on first set;
// every subsequent set replaces the amount (no versioning). Concurrent
// writers race under last-write-wins.
func (s *budgetService) Set(ctx context.Context, userID string, amount float64) (*models.Budget, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBudget, amount)
	}

	budget := &models.Budget{
		UserID:    userID,
		Amount:    amount,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.budgetRepo.Set(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to set budget for user '%s': %w", userID, err)
	}
	return budget, nil
}
