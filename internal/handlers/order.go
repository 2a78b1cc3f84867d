package handlers

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/jhelumkesar/internal/catalog"
	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/services"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	store  *store.Store
	mailer *services.Mailer
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(st *store.Store, mailer *services.Mailer) *OrderHandler {
	return &OrderHandler{store: st, mailer: mailer}
}

type createOrderRequest struct {
	Email           string             `json:"email"` // guest checkout only
	Items           []models.OrderItem `json:"items"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	BillingAddress  models.Address     `json:"billingAddress"`
}

// Create places an order for an authenticated user or a guest identified by
// email. Totals are computed server-side; the confirmation email is
// best-effort and never fails the order.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	claims, authenticated := middleware.CurrentUser(c)

	var buyerEmail string
	order := models.Order{
		ID:     models.NewOrderID(),
		Status: models.StatusPending,
	}
	if authenticated {
		order.UserID = claims.ID
		buyerEmail = claims.Email
	} else {
		if !utils.ValidEmail(req.Email) {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}
		order.GuestEmail = utils.NormalizeEmail(req.Email)
		buyerEmail = order.GuestEmail
	}

	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order items are required")
	}
	if req.ShippingAddress == (models.Address{}) || req.BillingAddress == (models.Address{}) {
		return fiber.NewError(fiber.StatusBadRequest, "shipping and billing addresses are required")
	}

	order.Items = req.Items
	order.ShippingAddress = req.ShippingAddress
	order.BillingAddress = req.BillingAddress
	order.Subtotal, order.Shipping, order.Total = models.CalculateTotals(req.Items)
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	orders, err := h.store.Orders()
	if err != nil {
		return err
	}
	orders = append(orders, order)
	if err := h.store.SaveOrders(orders); err != nil {
		return err
	}

	if err := h.mailer.Send(services.OrderConfirmationEmail(buyerEmail, order)); err != nil {
		logrus.WithFields(logrus.Fields{
			"order": order.ID,
			"to":    buyerEmail,
		}).Warnf("failed to send order confirmation email: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   order,
	})
}

// backfillImages fills missing item images from the catalog.
func backfillImages(orders []models.Order) {
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			if item.Image != "" {
				continue
			}
			if product := catalog.Find(item.ProductID); product != nil {
				item.Image = product.Image
			}
		}
	}
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	orders, err := h.store.Orders()
	if err != nil {
		return err
	}

	owned := make([]models.Order, 0)
	for _, o := range orders {
		if o.UserID == claims.ID {
			owned = append(owned, o)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	backfillImages(owned)

	return c.JSON(fiber.Map{"orders": owned})
}

// findOrder locates an order, returning the full slice for write-back.
func (h *OrderHandler) findOrder(id string) ([]models.Order, *models.Order, error) {
	orders, err := h.store.Orders()
	if err != nil {
		return nil, nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return orders, &orders[i], nil
		}
	}
	return nil, nil, fiber.NewError(fiber.StatusNotFound, "order not found")
}

// Get returns a single order. Only the owner may read it.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	_, order, err := h.findOrder(c.Params("id"))
	if err != nil {
		return err
	}
	if order.UserID != claims.ID {
		return fiber.NewError(fiber.StatusForbidden, "unauthorized")
	}

	return c.JSON(fiber.Map{"order": *order})
}

type updateOrderRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	CourierService string `json:"courierService"`
}

// applyOrderUpdate merges the supplied fields over the order, stamps
// updatedAt, persists, and emails the buyer when the status changed. Shared
// by the owner and admin update paths.
func (h *OrderHandler) applyOrderUpdate(c *fiber.Ctx, orders []models.Order, order *models.Order, req updateOrderRequest) error {
	if req.Status != "" && !models.ValidStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order status")
	}

	previousStatus := order.Status
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.CourierService != "" {
		order.CourierService = req.CourierService
	}
	order.UpdatedAt = time.Now().UTC()

	if err := h.store.SaveOrders(orders); err != nil {
		return err
	}

	if req.Status != "" && req.Status != previousStatus {
		if email := h.buyerEmail(*order); email != "" {
			if err := h.mailer.Send(services.OrderStatusEmail(email, *order)); err != nil {
				logrus.WithFields(logrus.Fields{
					"order": order.ID,
					"to":    email,
				}).Warnf("failed to send status update email: %v", err)
			}
		}
	}

	return c.JSON(fiber.Map{"message": "Order updated", "order": *order})
}

// buyerEmail resolves the notification address for an order.
func (h *OrderHandler) buyerEmail(order models.Order) string {
	if order.GuestEmail != "" {
		return order.GuestEmail
	}
	users, err := h.store.Users()
	if err != nil {
		return ""
	}
	for _, u := range users {
		if u.ID == order.UserID {
			return u.Email
		}
	}
	return ""
}

// Update lets the order's owner change status or tracking fields. Ownership
// is checked; updating another user's order is a 403.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	var req updateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orders, order, err := h.findOrder(c.Params("id"))
	if err != nil {
		return err
	}
	if order.UserID != claims.ID {
		return fiber.NewError(fiber.StatusForbidden, "unauthorized")
	}

	return h.applyOrderUpdate(c, orders, order, req)
}

// Track returns the mocked courier checkpoint timeline for a shipped order.
// Requires a tracking number to have been assigned.
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	_, order, err := h.findOrder(c.Params("id"))
	if err != nil {
		return err
	}
	if order.UserID != claims.ID {
		return fiber.NewError(fiber.StatusForbidden, "unauthorized")
	}
	if order.TrackingNumber == "" {
		return fiber.NewError(fiber.StatusNotFound, "tracking number not available yet")
	}

	courierService := order.CourierService
	if courierService == "" {
		courierService = "delhivery"
	}
	courierService = strings.ToLower(courierService)

	return c.JSON(fiber.Map{
		"orderId":        order.ID,
		"trackingNumber": order.TrackingNumber,
		"courierService": services.CourierName(courierService),
		"trackingUrl":    services.TrackingURL(courierService, order.TrackingNumber),
		"status":         order.Status,
		"trackingInfo":   services.TrackingStatus(courierService, order.TrackingNumber),
	})
}
