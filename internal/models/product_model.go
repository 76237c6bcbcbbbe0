package models

import "time"

// Product is a catalog entry. The catalog is owned by the backend and is
// read-only from the client's perspective.
type Product struct {
	ID          string    `json:"id" firestore:"-"` // Document ID, the catalog product code (e.g. "DB001")
	Name        string    `json:"name" firestore:"name"`
	Price       float64   `json:"price" firestore:"price"` // Non-negative, currency-agnostic magnitude (rupees in the seed data)
	Category    string    `json:"category" firestore:"category"`
	Tags        []string  `json:"tags" firestore:"tags"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	InStock     bool      `json:"in_stock" firestore:"inStock"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt,serverTimestamp"`
}

// Valid reports whether a product document fetched from the store carries the
// fields the aggregation and recommendation code relies on. Malformed upstream
// documents are rejected at the boundary rather than trusted.
func (p *Product) Valid() bool {
	return p.ID != "" && p.Name != "" && p.Price >= 0 && p.Category != ""
}
