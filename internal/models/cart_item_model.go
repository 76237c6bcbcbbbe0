package models

import "time"

// CartItem is one entry in a user's personal cart. It snapshots the product
// fields at add time. One document is created per physical addition; repeated
// adds of the same product produce distinct documents.
type CartItem struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID    string    `json:"user_id" firestore:"userId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Category  string    `json:"category" firestore:"category"`
	Tags      []string  `json:"tags" firestore:"tags"`
	ImageURL  string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt,serverTimestamp"`
}
