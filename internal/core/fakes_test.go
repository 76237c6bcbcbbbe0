package core

import (
	"context"
	"fmt"
	"sync"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// fakeProductRepo is an in-memory db.ProductRepository.
type fakeProductRepo struct {
	mu        sync.Mutex
	products  map[string]*models.Product
	getAllErr error
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*models.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) GetByID(_ context.Context, productID string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetAll(_ context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	all := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		all = append(all, &clone)
	}
	return all, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}

func (r *fakeProductRepo) CreateAll(_ context.Context, products []*models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

// fakeSharedCartRepo is an in-memory db.SharedCartRepository.
type fakeSharedCartRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.SharedCartSession
	items    map[string][]*models.SharedCartItem
	nextID   int

	// createCollisions makes the next N CreateSession calls fail with
	// db.ErrAlreadyExists, simulating code collisions.
	createCollisions int
	deleteErr        error
}

func newFakeSharedCartRepo() *fakeSharedCartRepo {
	return &fakeSharedCartRepo{
		sessions: make(map[string]*models.SharedCartSession),
		items:    make(map[string][]*models.SharedCartItem),
	}
}

func (r *fakeSharedCartRepo) CreateSession(_ context.Context, session *models.SharedCartSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createCollisions > 0 {
		r.createCollisions--
		return db.ErrAlreadyExists
	}
	if _, exists := r.sessions[session.ID]; exists {
		return db.ErrAlreadyExists
	}
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *fakeSharedCartRepo) GetSession(_ context.Context, code string) (*models.SharedCartSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[code]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *session
	return &clone, nil
}

func (r *fakeSharedCartRepo) AddItem(_ context.Context, code string, item *models.SharedCartItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[code]; !ok {
		return "", db.ErrNotFound
	}
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("item-%d", r.nextID)
	r.items[code] = append(r.items[code], &clone)
	return clone.ID, nil
}

func (r *fakeSharedCartRepo) GetItems(_ context.Context, code string) ([]*models.SharedCartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*models.SharedCartItem, 0, len(r.items[code]))
	for _, item := range r.items[code] {
		clone := *item
		items = append(items, &clone)
	}
	return items, nil
}

func (r *fakeSharedCartRepo) DeleteItems(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.items, code)
	return nil
}

// fakeBudgetRepo is an in-memory db.BudgetRepository.
type fakeBudgetRepo struct {
	mu      sync.Mutex
	budgets map[string]*models.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[string]*models.Budget)}
}

func (r *fakeBudgetRepo) Get(_ context.Context, userID string) (*models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	budget, ok := r.budgets[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *budget
	return &clone, nil
}

func (r *fakeBudgetRepo) Set(_ context.Context, budget *models.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *budget
	r.budgets[budget.UserID] = &clone
	return nil
}

// fakeCartRepo is an in-memory db.CartRepository.
type fakeCartRepo struct {
	mu     sync.Mutex
	items  []*models.CartItem
	nextID int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{}
}

func (r *fakeCartRepo) Create(_ context.Context, item *models.CartItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("cart-%d", r.nextID)
	r.items = append(r.items, &clone)
	return clone.ID, nil
}

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) ([]*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []*models.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			items = append(items, &clone)
		}
	}
	return items, nil
}

func (r *fakeCartRepo) DeleteFirstByUserAndProduct(_ context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeRecommendationLogRepo records analytics entries in memory.
type fakeRecommendationLogRepo struct {
	mu        sync.Mutex
	entries   []models.RecommendationLog
	createErr error
}

func (r *fakeRecommendationLogRepo) Create(_ context.Context, entry models.RecommendationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

// fakeUserRepo is an in-memory db.UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}
