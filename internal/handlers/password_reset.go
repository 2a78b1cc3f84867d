package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/otp"
	"github.com/example/jhelumkesar/internal/services"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// PasswordResetHandler manages the OTP-based forgot-password flow.
type PasswordResetHandler struct {
	store  *store.Store
	cfg    *config.Config
	otp    otp.Store
	mailer *services.Mailer
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(st *store.Store, cfg *config.Config, codes otp.Store, mailer *services.Mailer) *PasswordResetHandler {
	return &PasswordResetHandler{store: st, cfg: cfg, otp: codes, mailer: mailer}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

const forgotPasswordMessage = "If an account exists with this email, an OTP has been sent."

// RequestOTP generates and stores a reset code for a registered email. The
// response is identical whether or not the account exists, so the endpoint
// cannot be used to probe for accounts. Outside production the code is echoed
// back for convenience.
func (h *PasswordResetHandler) RequestOTP(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	users, err := h.store.Users()
	if err != nil {
		return err
	}

	email := utils.NormalizeEmail(req.Email)
	registered := false
	for _, u := range users {
		if utils.NormalizeEmail(u.Email) == email {
			registered = true
			break
		}
	}

	if !registered {
		return c.JSON(fiber.Map{"message": forgotPasswordMessage})
	}

	code, err := otp.Generate()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate code")
	}
	if err := h.otp.Put(c.Context(), email, code); err != nil {
		return err
	}

	if err := h.mailer.Send(services.Email{
		To:      email,
		Subject: "Password Reset Code - Jhelum Kesar Co.",
		HTML:    fmt.Sprintf("<p>Your password reset code is <b>%s</b>. It expires in 5 minutes.</p>", code),
		Text:    fmt.Sprintf("Your password reset code is %s. It expires in 5 minutes.", code),
	}); err != nil {
		logrus.WithField("email", email).Warnf("failed to send OTP email: %v", err)
	}

	resp := fiber.Map{"message": forgotPasswordMessage}
	if !h.cfg.Production() {
		resp["otp"] = code
		resp["email"] = email
	}
	return c.JSON(resp)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword verifies the submitted code and rewrites the user's password
// hash. Codes are single-use.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email, OTP, and new password are required")
	}
	if len(req.NewPassword) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	email := utils.NormalizeEmail(req.Email)
	ok, err := h.otp.Verify(c.Context(), email, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired OTP")
	}

	users, err := h.store.Users()
	if err != nil {
		return err
	}

	var user *models.User
	for i := range users {
		if utils.NormalizeEmail(users[i].Email) == email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}
