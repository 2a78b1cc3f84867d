package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/services"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// LeadHandler captures contact-form submissions.
type LeadHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewLeadHandler constructs LeadHandler.
func NewLeadHandler(st *store.Store, cfg *config.Config) *LeadHandler {
	return &LeadHandler{store: st, cfg: cfg}
}

type createLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Query string `json:"query"`
}

// Create records a lead and hands back a WhatsApp click-to-chat URL carrying
// the lead summary for the shop owner.
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req createLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "all fields are required")
	}
	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}
	if !utils.ValidPhone(req.Phone) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid phone number")
	}

	lead := models.Lead{
		ID:        models.NewLeadID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     utils.NormalizeEmail(req.Email),
		Phone:     utils.NormalizePhone(req.Phone),
		Query:     strings.TrimSpace(req.Query),
		CreatedAt: time.Now().UTC(),
		Status:    models.LeadNew,
	}

	leads, err := h.store.Leads()
	if err != nil {
		return err
	}
	leads = append(leads, lead)
	if err := h.store.SaveLeads(leads); err != nil {
		return err
	}

	resp := fiber.Map{
		"message": "Lead submitted successfully",
		"lead":    lead,
	}
	if h.cfg.WhatsAppPhone != "" {
		resp["whatsappUrl"] = services.LeadWhatsAppURL(h.cfg.WhatsAppPhone, lead)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
