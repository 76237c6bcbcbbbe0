package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"cobudget-backend-go/internal/models"
)

const recommendationLogsCollection = "recommendation_logs"

// firestoreRecommendationLogRepository implements the
// RecommendationLogRepository interface using Firestore.
type firestoreRecommendationLogRepository struct {
	client *firestore.Client
}

// NewFirestoreRecommendationLogRepository creates a new instance of
// firestoreRecommendationLogRepository.
func NewFirestoreRecommendationLogRepository(client *firestore.Client) RecommendationLogRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RecommendationLogRepository.")
	}
	return &firestoreRecommendationLogRepository{client: client}
}

// Create adds a new recommendation log entry with an auto-generated ID.
func (r *firestoreRecommendationLogRepository) Create(ctx context.Context, logEntry models.RecommendationLog) error {
	docRef := r.client.Collection(recommendationLogsCollection).NewDoc()
	if _, err := docRef.Create(ctx, &logEntry); err != nil {
		return fmt.Errorf("failed to create recommendation log: %w", err)
	}
	return nil
}
