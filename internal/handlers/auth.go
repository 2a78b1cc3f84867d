package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/store"
	"github.com/example/jhelumkesar/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.TokenExpires.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: "Lax",
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Register creates a new customer account and opens a session.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" || req.Name == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "all fields are required")
	}
	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}
	if len(req.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}
	if !utils.ValidPhone(req.Phone) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid phone number")
	}

	users, err := h.store.Users()
	if err != nil {
		return err
	}

	email := utils.NormalizeEmail(req.Email)
	for _, u := range users {
		if utils.NormalizeEmail(u.Email) == email {
			return fiber.NewError(fiber.StatusConflict, "email already registered")
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		ID:           models.NewUserID(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Phone:        utils.NormalizePhone(req.Phone),
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := h.store.SaveUsers(users); err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, user.Name, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}
	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"phone": user.Phone,
		},
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing customer. Unknown email and wrong password
// produce the same response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	users, err := h.store.Users()
	if err != nil {
		return err
	}

	email := utils.NormalizeEmail(req.Email)
	var user *models.User
	for i := range users {
		if utils.NormalizeEmail(users[i].Email) == email {
			user = &users[i]
			break
		}
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, user.Name, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}
	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the stored account for the current session.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	users, err := h.store.Users()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.ID == claims.ID {
			return c.JSON(fiber.Map{"user": u.Public()})
		}
	}

	return fiber.NewError(fiber.StatusNotFound, "user not found")
}
