package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/models"
)

// ErrEmptyQuery is returned when a recommendation request carries neither a
// prompt nor any preferences.
var ErrEmptyQuery = errors.New("a prompt or at least one preference is required")

// maxRecommendations caps how many products a single query returns.
const maxRecommendations = 12

// occasionTags expands known occasion keywords into the product tags they
// imply, so "biryani" surfaces rice and spices even though no product is
// tagged "biryani" by name alone.
var occasionTags = map[string][]string{
	"biryani": {"rice", "spices", "chicken", "saffron", "yogurt"},
	"wedding": {"sweets", "decorations", "flowers", "snacks", "juice"},
	"keto":    {"almonds", "avocados", "eggs", "cheese", "spinach"},
	"party":   {"chips", "soda", "cake", "cups", "snacks"},
}

// recommendService implements the RecommendService interface. It is the
// consolidated entry point for keyword, occasion and nutrition-preference
// recommendations, with an optional budget cap.
type recommendService struct {
	productRepo db.ProductRepository
	logRepo     db.RecommendationLogRepository
}

// NewRecommendService creates a new RecommendService instance.
func NewRecommendService(pr db.ProductRepository, lr db.RecommendationLogRepository) RecommendService {
	return &recommendService{productRepo: pr, logRepo: lr}
}

// Recommend scores the in-stock catalog against the query and returns the
// top matches, cheapest first among equal scores. Scoring: +10 full-phrase
// match, +5 keyword in name, +3 keyword in category, +2 keyword or
// preference in tags. Products above the budget (when positive) are
// dropped. The query is logged best-effort for analytics.
func (s *recommendService) Recommend(ctx context.Context, query RecommendationQuery) ([]models.ScoredProduct, error) {
	prompt := strings.ToLower(strings.TrimSpace(query.Prompt))
	if prompt == "" && len(query.Preferences) == 0 {
		return nil, ErrEmptyQuery
	}

	// Keywords are prompt words longer than two characters.
	var keywords []string
	for _, word := range strings.Fields(prompt) {
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}

	// Occasion keywords and explicit nutrition preferences both expand
	// into extra tag terms.
	var tagTerms []string
	for _, keyword := range keywords {
		tagTerms = append(tagTerms, occasionTags[keyword]...)
	}
	for _, pref := range query.Preferences {
		if pref = strings.ToLower(strings.TrimSpace(pref)); pref != "" {
			tagTerms = append(tagTerms, pref)
		}
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for recommendation: %w", err)
	}

	var recommended []models.ScoredProduct
	for _, product := range products {
		if !product.Valid() || !product.InStock {
			continue
		}
		if query.Budget > 0 && product.Price > query.Budget {
			continue
		}

		score := scoreProduct(product, prompt, keywords, tagTerms)
		if score > 0 {
			recommended = append(recommended, models.ScoredProduct{Product: *product, MatchScore: score})
		}
	}

	sort.Slice(recommended, func(i, j int) bool {
		if recommended[i].MatchScore != recommended[j].MatchScore {
			return recommended[i].MatchScore > recommended[j].MatchScore
		}
		return recommended[i].Price < recommended[j].Price
	})
	if len(recommended) > maxRecommendations {
		recommended = recommended[:maxRecommendations]
	}

	s.logQuery(ctx, query, len(recommended))

	return recommended, nil
}

func scoreProduct(p *models.Product, prompt string, keywords, tagTerms []string) int {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)
	tags := make([]string, len(p.Tags))
	for i, tag := range p.Tags {
		tags[i] = strings.ToLower(tag)
	}

	score := 0
	if prompt != "" {
		productText := name + " " + category + " " + strings.Join(tags, " ")
		if strings.Contains(productText, prompt) {
			score += 10
		}
	}

	for _, keyword := range keywords {
		switch {
		case strings.Contains(name, keyword):
			score += 5
		case strings.Contains(category, keyword):
			score += 3
		case anyTagContains(tags, keyword):
			score += 2
		}
	}
	for _, term := range tagTerms {
		if anyTagContains(tags, term) {
			score += 2
		}
	}
	return score
}

func anyTagContains(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}

// logQuery records the query for analytics. Failures are logged, never
// surfaced: analytics must not fail a recommendation.
func (s *recommendService) logQuery(ctx context.Context, query RecommendationQuery, resultsCount int) {
	if s.logRepo == nil {
		return
	}
	entry := models.RecommendationLog{
		UserID:       query.UserID,
		Prompt:       query.Prompt,
		Budget:       query.Budget,
		ResultsCount: resultsCount,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("Warning: failed to write recommendation log: %v", err)
	}
}
