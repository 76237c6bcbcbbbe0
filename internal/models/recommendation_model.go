package models

import "time"

// RecommendationLog records one recommendation query for analytics. Entries
// are create-only and written on a best-effort basis.
type RecommendationLog struct {
	ID           string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID       string    `json:"user_id,omitempty" firestore:"userId,omitempty"`
	Prompt       string    `json:"prompt" firestore:"prompt"`
	Budget       float64   `json:"budget,omitempty" firestore:"budget,omitempty"`
	ResultsCount int       `json:"results_count" firestore:"resultsCount"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// ScoredProduct is a product with its recommendation match score attached.
type ScoredProduct struct {
	Product
	MatchScore int `json:"match_score"`
}
