package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/services"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// AddressHandler manages the per-user address book and the legacy
// shipping/billing address fields.
type AddressHandler struct {
	store   *store.Store
	pincode *services.PincodeClient
}

// NewAddressHandler constructs an AddressHandler.
func NewAddressHandler(st *store.Store, pincode *services.PincodeClient) *AddressHandler {
	return &AddressHandler{store: st, pincode: pincode}
}

// loadUser resolves the session user against the users collection, returning
// the full slice so mutations can be written back.
func (h *AddressHandler) loadUser(c *fiber.Ctx) ([]models.User, *models.User, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	users, err := h.store.Users()
	if err != nil {
		return nil, nil, err
	}
	for i := range users {
		if users[i].ID == claims.ID {
			return users, &users[i], nil
		}
	}
	return nil, nil, fiber.NewError(fiber.StatusNotFound, "user not found")
}

// List returns the user's address book.
func (h *AddressHandler) List(c *fiber.Ctx) error {
	_, user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	addresses := user.Addresses
	if addresses == nil {
		addresses = []models.SavedAddress{}
	}
	return c.JSON(fiber.Map{"addresses": addresses})
}

type createAddressRequest struct {
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

func validateAddressFields(name, phone, address, city, state, pincode string) error {
	fields := map[string]string{
		"name":    name,
		"phone":   phone,
		"address": address,
		"city":    city,
		"state":   state,
		"pincode": pincode,
	}
	for _, field := range []string{"name", "phone", "address", "city", "state", "pincode"} {
		if strings.TrimSpace(fields[field]) == "" {
			return fiber.NewError(fiber.StatusBadRequest, field+" is required")
		}
	}
	if !utils.ValidPhone(phone) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid phone number")
	}
	if !utils.ValidPincode(strings.TrimSpace(pincode)) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pincode")
	}
	return nil
}

// Create adds a new saved address. The first address, or one explicitly
// requested as default, becomes the user's default.
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var req createAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validateAddressFields(req.Name, req.Phone, req.Address, req.City, req.State, req.Pincode); err != nil {
		return err
	}

	users, user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	address := user.AddAddress(models.SavedAddress{
		ID:        models.NewAddressID(),
		Label:     strings.TrimSpace(req.Label),
		IsDefault: req.IsDefault,
		Name:      strings.TrimSpace(req.Name),
		Phone:     utils.NormalizePhone(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		State:     strings.TrimSpace(req.State),
		Pincode:   strings.TrimSpace(req.Pincode),
	})

	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Address added",
		"address": address,
		"user":    user.Public(),
	})
}

type updateAddressRequest struct {
	ID      string  `json:"id"`
	Action  string  `json:"action"` // "update" (default) | "setDefault"
	Label   *string `json:"label"`
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`
}

// Update applies a partial update to a saved address, or flips the default
// when action is "setDefault".
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	var req updateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "address id is required")
	}

	users, user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	if req.Action == "setDefault" {
		if !user.SetDefaultAddress(req.ID) {
			return fiber.NewError(fiber.StatusNotFound, "address not found")
		}
	} else {
		addr := user.FindAddress(req.ID)
		if addr == nil {
			return fiber.NewError(fiber.StatusNotFound, "address not found")
		}

		if req.Phone != nil && !utils.ValidPhone(*req.Phone) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid phone number")
		}
		if req.Pincode != nil && !utils.ValidPincode(strings.TrimSpace(*req.Pincode)) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid pincode")
		}

		if req.Label != nil {
			addr.Label = strings.TrimSpace(*req.Label)
		}
		if req.Name != nil {
			addr.Name = strings.TrimSpace(*req.Name)
		}
		if req.Phone != nil {
			addr.Phone = utils.NormalizePhone(*req.Phone)
		}
		if req.Address != nil {
			addr.Address = strings.TrimSpace(*req.Address)
		}
		if req.City != nil {
			addr.City = strings.TrimSpace(*req.City)
		}
		if req.State != nil {
			addr.State = strings.TrimSpace(*req.State)
		}
		if req.Pincode != nil {
			addr.Pincode = strings.TrimSpace(*req.Pincode)
		}
		user.SyncDefaultAddress()
	}

	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Address updated",
		"user":    user.Public(),
	})
}

// Delete removes a saved address; deleting the default promotes the first
// remaining address.
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "address id is required")
	}

	users, user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	if !user.DeleteAddress(id) {
		return fiber.NewError(fiber.StatusNotFound, "address not found")
	}

	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Address deleted",
		"user":    user.Public(),
	})
}

type updateLegacyAddressRequest struct {
	Type    string         `json:"type"` // "shipping" | "billing"
	Address models.Address `json:"address"`
}

// UpdateLegacy writes the legacy single shipping/billing address fields
// directly, for older checkout code paths.
func (h *AddressHandler) UpdateLegacy(c *fiber.Ctx) error {
	var req updateLegacyAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Type != "shipping" && req.Type != "billing" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid address type")
	}
	a := req.Address
	if err := validateAddressFields(a.Name, a.Phone, a.Address, a.City, a.State, a.Pincode); err != nil {
		return err
	}

	users, user, err := h.loadUser(c)
	if err != nil {
		return err
	}

	clean := models.Address{
		Name:    strings.TrimSpace(a.Name),
		Phone:   utils.NormalizePhone(a.Phone),
		Address: strings.TrimSpace(a.Address),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Pincode: strings.TrimSpace(a.Pincode),
	}
	if req.Type == "shipping" {
		user.ShippingAddress = &clean
	} else {
		user.BillingAddress = &clean
	}

	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Address updated successfully",
		"user":    user.Public(),
	})
}

// LookupPincode resolves a postal code for address autofill. Failures are
// soft: the response carries found=false.
func (h *AddressHandler) LookupPincode(c *fiber.Ctx) error {
	code := c.Params("code")
	if !utils.ValidPincode(code) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pincode")
	}
	return c.JSON(h.pincode.Lookup(code))
}
