package models

import "time"

// Order statuses. Orders move pending → confirmed → processing → shipped →
// delivered, or to cancelled.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Shipping is a flat domestic fee, waived above the threshold.
const (
	FreeShippingThreshold = 1000
	FlatShippingFee       = 50
)

// ValidStatus reports whether s is a member of the order status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a purchased line item. Product fields are snapshotted at
// checkout; Image may be backfilled later from the catalog.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Variant   float64 `json:"variant,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// Order is a placed order. Orders are never deleted; only status and
// tracking fields change after creation.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId,omitempty"`
	GuestEmail      string      `json:"guestEmail,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
	CourierService  string      `json:"courierService,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CalculateTotals derives subtotal, shipping and total from line items.
func CalculateTotals(items []OrderItem) (subtotal, shipping, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	if subtotal < FreeShippingThreshold {
		shipping = FlatShippingFee
	}
	return subtotal, shipping, subtotal + shipping
}

// Contains reports whether the order includes the given product.
func (o *Order) Contains(productID string) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
