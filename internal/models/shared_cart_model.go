package models

import "time"

// AnonymousContributor is the fallback identity attributed to shared-cart
// items added without an authenticated user.
const AnonymousContributor = "anonymous@example.com"

// SharedCartSession is a named bill-splitting group. The document ID is a
// short uppercase alphanumeric code meant for casual human sharing, not
// security. There is no membership list: anyone holding the code may join.
type SharedCartSession struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, 8-char uppercase alphanumeric code
	Name      string    `json:"name" firestore:"name"`
	CreatedBy string    `json:"created_by,omitempty" firestore:"createdBy,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	Active    bool      `json:"active" firestore:"active"`
}

// SharedCartItem is one line item in a shared cart session, stored in the
// session's items subcollection. Price and tags are resolved from the
// referenced product at read time; the item never stores a derived total.
type SharedCartItem struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	ProductID string    `json:"product_id" firestore:"productId"`
	AddedBy   string    `json:"added_by" firestore:"addedBy"` // Contributor identity, never empty (see AnonymousContributor)
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt,serverTimestamp"`
}

// BillItem is a shared-cart line item with its product resolved, as returned
// by the bill-split view.
type BillItem struct {
	ID       string    `json:"id"`
	Product  Product   `json:"product"`
	AddedBy  string    `json:"added_by"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// BillSplit is the computed, non-persisted bill-split view of a session. It
// is recomputed from scratch on every listing and never cached.
type BillSplit struct {
	Session    SharedCartSession  `json:"session"`
	Items      []BillItem         `json:"items"`
	UserTotals map[string]float64 `json:"user_totals"`
	OverBudget map[string]bool    `json:"over_budget"` // Advisory only; never blocks an add
	GrandTotal float64            `json:"grand_total"`
}
