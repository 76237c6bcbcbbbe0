package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreate retrieves a user profile by UID, creating it on the first
// authenticated call. Existing profiles get a last-login touch.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newUser := &models.User{
				ID:          userID,
				Email:       email,
				DisplayName: displayName,
				CreatedAt:   time.Now().UTC(),
				LastLogin:   time.Now().UTC(),
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				return nil, false, fmt.Errorf("failed to create user profile (id: %s): %w", userID, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}

	user.LastLogin = time.Now().UTC()
	if updateErr := s.userRepo.Update(ctx, user); updateErr != nil {
		// A failed last-login touch is not worth failing the call over.
		log.Printf("Warning: failed to update last login for user '%s': %v", userID, updateErr)
	}
	return user, false, nil
}

// GetByID retrieves a user profile by UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return user, nil
}
