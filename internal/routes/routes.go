package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/handlers"
	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/otp"
	"github.com/example/jhelumkesar/internal/services"
	"github.com/example/jhelumkesar/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, cfg *config.Config, codes otp.Store) {
	mailer := services.NewMailer(cfg.EmailProvider, cfg.EmailFrom, cfg.ResendAPIKey, cfg.SendgridAPIKey)
	pincode := services.NewPincodeClient()

	authHandler := handlers.NewAuthHandler(st, cfg)
	resetHandler := handlers.NewPasswordResetHandler(st, cfg, codes, mailer)
	addressHandler := handlers.NewAddressHandler(st, pincode)
	orderHandler := handlers.NewOrderHandler(st, mailer)
	reviewHandler := handlers.NewReviewHandler(st)
	leadHandler := handlers.NewLeadHandler(st, cfg)
	catalogHandler := handlers.NewCatalogHandler()
	adminHandler := handlers.NewAdminHandler(st, cfg, orderHandler)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.Auth(cfg), authHandler.Me)
	auth.Post("/forgot-password", resetHandler.RequestOTP)
	auth.Put("/forgot-password", resetHandler.ResetPassword)

	// Address book
	addresses := auth.Group("/addresses", middleware.Auth(cfg))
	addresses.Get("/", addressHandler.List)
	addresses.Post("/", addressHandler.Create)
	addresses.Put("/", addressHandler.Update)
	addresses.Delete("/", addressHandler.Delete)
	auth.Put("/update-address", middleware.Auth(cfg), addressHandler.UpdateLegacy)

	// Catalog
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/pincode/:code", addressHandler.LookupPincode)

	// Orders: creation allows guest checkout, the rest requires a session.
	api.Post("/orders", middleware.OptionalAuth(cfg), orderHandler.Create)
	api.Get("/orders", middleware.Auth(cfg), orderHandler.List)
	api.Get("/orders/:id", middleware.Auth(cfg), orderHandler.Get)
	api.Put("/orders/:id", middleware.Auth(cfg), orderHandler.Update)
	api.Get("/orders/:id/track", middleware.Auth(cfg), orderHandler.Track)

	// Reviews
	api.Get("/reviews", reviewHandler.ListForProduct)
	api.Post("/reviews", middleware.Auth(cfg), reviewHandler.Create)
	api.Put("/reviews/:id", middleware.Auth(cfg), reviewHandler.Update)
	api.Delete("/reviews/:id", middleware.Auth(cfg), reviewHandler.Delete)

	// Leads
	api.Post("/leads", leadHandler.Create)

	// Admin: separate session with its own cookie.
	admin := api.Group("/admin")
	admin.Post("/auth", adminHandler.Login)
	admin.Delete("/auth", adminHandler.Logout)

	protected := admin.Group("", middleware.AdminAuth(cfg))
	protected.Get("/me", adminHandler.Me)
	protected.Get("/orders", adminHandler.ListOrders)
	protected.Put("/orders/:id", adminHandler.UpdateOrder)
	protected.Get("/users", adminHandler.ListUsers)
	protected.Get("/leads", adminHandler.ListLeads)
	protected.Get("/stats", adminHandler.Stats)
}
