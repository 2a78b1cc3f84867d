package handlers

import (
	"crypto/subtle"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// AdminHandler manages the admin session and elevated read/update access.
// Admin auth is a fixed configured credential pair, not a user account.
type AdminHandler struct {
	store  *store.Store
	cfg    *config.Config
	orders *OrderHandler
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store, cfg *config.Config, orders *OrderHandler) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg, orders: orders}
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the configured admin credentials and opens the admin session.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if h.cfg.AdminPassword == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin credentials")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin credentials")
	}

	token, err := utils.GenerateAdminToken(h.cfg.JWTSecret, req.Email, h.cfg.AdminExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.AdminExpires.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"message": "Admin login successful"})
}

// Logout clears the admin session cookie.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me echoes the admin session.
func (h *AdminHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authorized")
	}
	return c.JSON(fiber.Map{"admin": true, "email": claims.Email})
}

// ListOrders returns every order, newest first.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.store.Orders()
	if err != nil {
		return err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	backfillImages(orders)

	pg := utils.ParsePagination(c)
	start, end := pg.Slice(len(orders))

	return c.JSON(fiber.Map{
		"orders": orders[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(orders),
		},
	})
}

// UpdateOrder merges status/tracking fields over any order.
func (h *AdminHandler) UpdateOrder(c *fiber.Ctx) error {
	var req updateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	orders, order, err := h.orders.findOrder(c.Params("id"))
	if err != nil {
		return err
	}

	return h.orders.applyOrderUpdate(c, orders, order, req)
}

// ListUsers returns every registered user without password hashes.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store.Users()
	if err != nil {
		return err
	}

	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"phone":     u.Phone,
			"createdAt": u.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"total": len(users),
		"users": out,
	})
}

// ListLeads returns every captured lead, newest first.
func (h *AdminHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.store.Leads()
	if err != nil {
		return err
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})

	return c.JSON(fiber.Map{"total": len(leads), "leads": leads})
}

// Stats returns aggregate figures for the admin dashboard.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	users, err := h.store.Users()
	if err != nil {
		return err
	}
	orders, err := h.store.Orders()
	if err != nil {
		return err
	}
	leads, err := h.store.Leads()
	if err != nil {
		return err
	}
	reviews, err := h.store.Reviews()
	if err != nil {
		return err
	}

	ordersByStatus := make(map[string]int)
	var totalRevenue float64
	for _, o := range orders {
		ordersByStatus[o.Status]++
		if o.Status != models.StatusCancelled {
			totalRevenue += o.Total
		}
	}

	return c.JSON(fiber.Map{
		"totalUsers":     len(users),
		"totalOrders":    len(orders),
		"totalLeads":     len(leads),
		"totalReviews":   len(reviews),
		"totalRevenue":   totalRevenue,
		"ordersByStatus": ordersByStatus,
	})
}
