package core

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// Custom errors for the SharedCartService
var (
	ErrSessionNotFound = errors.New("shared cart session not found")
	ErrProductNotFound = errors.New("product not found")
	ErrClearIncomplete = errors.New("failed to clear all items from the session")
)

const (
	// DefaultSessionName is used when a session is created with an empty name.
	DefaultSessionName = "Shared Cart"

	sessionCodeLength   = 8
	sessionCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxCodeAttempts bounds code regeneration on collision. With 36^8
	// codes a collision is already vanishingly unlikely.
	maxCodeAttempts = 10
)

// sharedCartService implements the SharedCartService interface.
type sharedCartService struct {
	sharedCartRepo db.SharedCartRepository
	productRepo    db.ProductRepository
	// overBudgetThreshold is the advisory per-contributor limit. It is a
	// fixed configured constant, not derived from any user's Budget.
	overBudgetThreshold float64
}

// NewSharedCartService creates a new SharedCartService instance.
func NewSharedCartService(scr db.SharedCartRepository, pr db.ProductRepository, overBudgetThreshold float64) SharedCartService {
	return &sharedCartService{
		sharedCartRepo:      scr,
		productRepo:         pr,
		overBudgetThreshold: overBudgetThreshold,
	}
}

// newSessionCode generates a short uppercase alphanumeric code. Enough
// entropy for casual human sharing, not a security boundary.
func newSessionCode() (string, error) {
	buf := make([]byte, sessionCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session code: %w", err)
	}
	for i, b := range buf {
		buf[i] = sessionCodeAlphabet[int(b)%len(sessionCodeAlphabet)]
	}
	return string(buf), nil
}

// normalizeCode case-normalizes a human-entered session code.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateSession generates a fresh unique code, stores the session record
// and returns it. An empty name after trimming falls back to
// DefaultSessionName; that is not an error.
func (s *sharedCartService) CreateSession(ctx context.Context, name, createdBy string) (*models.SharedCartSession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSessionName
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newSessionCode()
		if err != nil {
			return nil, err
		}

		session := &models.SharedCartSession{
			ID:        code,
			Name:      name,
			CreatedBy: createdBy,
			CreatedAt: time.Now().UTC(),
			Active:    true,
		}

		err = s.sharedCartRepo.CreateSession(ctx, session)
		if err == nil {
			return session, nil
		}
		if errors.Is(err, db.ErrAlreadyExists) {
			continue // Code collision, regenerate
		}
		return nil, fmt.Errorf("failed to create shared cart session: %w", err)
	}

	return nil, fmt.Errorf("failed to allocate a unique session code after %d attempts", maxCodeAttempts)
}

// JoinSession looks up a session by its exact, case-normalized code.
func (s *sharedCartService) JoinSession(ctx context.Context, code string) (*models.SharedCartSession, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty session code", ErrSessionNotFound)
	}

	session, err := s.sharedCartRepo.GetSession(ctx, code)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no session with code '%s'", ErrSessionNotFound, code)
		}
		return nil, fmt.Errorf("failed to look up session '%s': %w", code, err)
	}
	if !session.Active {
		return nil, fmt.Errorf("%w: session '%s' is inactive", ErrSessionNotFound, code)
	}

	return session, nil
}

// AddItem resolves the product and session, then appends a line item with
// quantity 1. An already-present product from the same contributor creates
// an additional line item; quantity merging is deliberately not performed.
func (s *sharedCartService) AddItem(ctx context.Context, code, productID, contributor string) (*models.SharedCartItem, error) {
	session, err := s.JoinSession(ctx, code)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: no product with ID '%s'", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to resolve product '%s': %w", productID, err)
	}

	contributor = strings.TrimSpace(contributor)
	if contributor == "" {
		contributor = models.AnonymousContributor
	}

	item := &models.SharedCartItem{
		ProductID: product.ID,
		AddedBy:   contributor,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	itemID, err := s.sharedCartRepo.AddItem(ctx, session.ID, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add item to session '%s': %w", session.ID, err)
	}
	item.ID = itemID
	return item, nil
}

// ListItems fetches all line items for the session and computes the bill
// split: items with products resolved, per-contributor subtotals, grand
// total and over-budget flags. Nothing is persisted or cached; consumers
// must not rely on contributor ordering.
func (s *sharedCartService) ListItems(ctx context.Context, code string) (*models.BillSplit, error) {
	session, err := s.JoinSession(ctx, code)
	if err != nil {
		return nil, err
	}

	items, err := s.sharedCartRepo.GetItems(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for session '%s': %w", session.ID, err)
	}

	split := &models.BillSplit{
		Session:    *session,
		Items:      []models.BillItem{},
		UserTotals: make(map[string]float64),
		OverBudget: make(map[string]bool),
	}

	// Products repeat across line items; resolve each ID once.
	resolved := make(map[string]*models.Product)
	for _, item := range items {
		product, ok := resolved[item.ProductID]
		if !ok {
			product, err = s.productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					// Item references a product no longer in the catalog.
					log.Printf("Skipping shared cart item '%s': product '%s' not found", item.ID, item.ProductID)
					resolved[item.ProductID] = nil
					continue
				}
				return nil, fmt.Errorf("failed to resolve product '%s' for session '%s': %w", item.ProductID, session.ID, err)
			}
			if !product.Valid() {
				log.Printf("Skipping shared cart item '%s': product '%s' failed validation", item.ID, item.ProductID)
				resolved[item.ProductID] = nil
				continue
			}
			resolved[item.ProductID] = product
		}
		if product == nil {
			continue
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		contributor := item.AddedBy
		if contributor == "" {
			// Items must never be grouped under an empty contributor key.
			contributor = models.AnonymousContributor
		}

		split.Items = append(split.Items, models.BillItem{
			ID:       item.ID,
			Product:  *product,
			AddedBy:  contributor,
			Quantity: quantity,
			AddedAt:  item.AddedAt,
		})
		// Effective price is always recomputed, never stored.
		split.UserTotals[contributor] += product.Price * float64(quantity)
	}

	for contributor, subtotal := range split.UserTotals {
		split.GrandTotal += subtotal
		if subtotal > s.overBudgetThreshold {
			split.OverBudget[contributor] = true
		}
	}

	return split, nil
}

// ClearSession deletes every line item in the session. If any deletion
// fails the caller gets an error describing the partial outcome.
func (s *sharedCartService) ClearSession(ctx context.Context, code string) error {
	session, err := s.JoinSession(ctx, code)
	if err != nil {
		return err
	}

	if err := s.sharedCartRepo.DeleteItems(ctx, session.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrClearIncomplete, err)
	}
	return nil
}
