package models

import "time"

// Budget is a user's spending budget. One document per user, keyed by the
// Firebase Auth UID; every set overwrites the previous amount (last write
// wins, no versioning).
type Budget struct {
	UserID    string    `json:"user_id" firestore:"-"` // Document ID (Firebase Auth UID)
	Amount    float64   `json:"amount" firestore:"budget"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt,serverTimestamp"`
}
