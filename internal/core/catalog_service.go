package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// catalogService implements the CatalogService interface.
type catalogService struct {
	productRepo db.ProductRepository
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(pr db.ProductRepository) CatalogService {
	return &catalogService{productRepo: pr}
}

// ListProducts returns the full catalog. Documents that do not satisfy the
// product schema (missing id/name, negative price) are dropped at the
// boundary so a malformed upstream document cannot corrupt aggregation.
func (s *catalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	valid := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if !p.Valid() {
			log.Printf("Dropping malformed catalog document (ID: %q, name: %q)", p.ID, p.Name)
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}

// Filter narrows the catalog by exact category match and a case-insensitive
// substring query matched against name, category and tags. Empty filters
// pass everything through.
func (s *catalogService) Filter(ctx context.Context, category, query string) ([]*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !productMatchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func productMatchesQuery(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
