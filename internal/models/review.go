package models

import "time"

// Review is a product review. Verified is derived once at creation time from
// the author's non-cancelled purchases; nil distinguishes records that predate
// the flag (shown) from explicitly unverified ones (hidden in listings).
type Review struct {
	ID        string     `json:"id"`
	ProductID string     `json:"productId"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	Rating    int        `json:"rating"`
	Title     string     `json:"title,omitempty"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Verified  *bool      `json:"verified,omitempty"`
}

// Hidden reports whether the review is excluded from product listings.
func (r *Review) Hidden() bool {
	return r.Verified != nil && !*r.Verified
}
