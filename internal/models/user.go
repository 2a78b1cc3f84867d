package models

import (
	"time"
)

// Address is the single shipping/billing address shape used on orders and as
// the legacy mirror on User.
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// SavedAddress is a named, reusable address in a user's address book.
type SavedAddress struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

// User represents a customer account. JSON field names match the persisted
// collection layout.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"passwordHash,omitempty"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	CreatedAt    time.Time      `json:"createdAt"`
	Verified     bool           `json:"verified"`
	Addresses    []SavedAddress `json:"addresses,omitempty"`

	// Legacy single-address mirror, kept in sync with the default saved
	// address on every address-book mutation.
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
}

// Public returns a copy safe to embed in API responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// DefaultAddress returns the current default saved address, if any.
func (u *User) DefaultAddress() *SavedAddress {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}

// FindAddress locates a saved address by id.
func (u *User) FindAddress(id string) *SavedAddress {
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			return &u.Addresses[i]
		}
	}
	return nil
}

// AddAddress appends addr to the address book. The user's first address, or
// one explicitly flagged default, becomes the sole default.
func (u *User) AddAddress(addr SavedAddress) SavedAddress {
	if addr.Label == "" {
		addr.Label = "Home"
	}
	if len(u.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		for i := range u.Addresses {
			u.Addresses[i].IsDefault = false
		}
	}
	u.Addresses = append(u.Addresses, addr)
	u.SyncDefaultAddress()
	return addr
}

// SetDefaultAddress flips exactly one address to default. Returns false when
// the id is unknown.
func (u *User) SetDefaultAddress(id string) bool {
	if u.FindAddress(id) == nil {
		return false
	}
	for i := range u.Addresses {
		u.Addresses[i].IsDefault = u.Addresses[i].ID == id
	}
	u.SyncDefaultAddress()
	return true
}

// DeleteAddress removes an address. Deleting the default promotes the first
// remaining address, so exactly one default survives when any addresses do.
func (u *User) DeleteAddress(id string) bool {
	idx := -1
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	wasDefault := u.Addresses[idx].IsDefault
	u.Addresses = append(u.Addresses[:idx], u.Addresses[idx+1:]...)
	if wasDefault && len(u.Addresses) > 0 {
		u.Addresses[0].IsDefault = true
	}
	u.SyncDefaultAddress()
	return true
}

// SyncDefaultAddress re-derives the legacy shippingAddress mirror from the
// current default saved address.
func (u *User) SyncDefaultAddress() {
	def := u.DefaultAddress()
	if def == nil {
		return
	}
	u.ShippingAddress = &Address{
		Name:    def.Name,
		Phone:   def.Phone,
		Address: def.Address,
		City:    def.City,
		State:   def.State,
		Pincode: def.Pincode,
	}
}
