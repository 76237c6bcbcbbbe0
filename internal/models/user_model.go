package models

import "time"

// User is the backend profile mirroring a Firebase Auth account.
type User struct {
	ID          string    `json:"id" firestore:"-"` // Firebase Auth UID, used as the document ID
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"display_name,omitempty" firestore:"displayName,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	LastLogin   time.Time `json:"last_login" firestore:"lastLogin,serverTimestamp"`
}
