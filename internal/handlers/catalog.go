package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/catalog"
)

// CatalogHandler serves the embedded product catalog.
type CatalogHandler struct{}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListProducts returns the full catalog, optionally filtered by category.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products := catalog.All()

	if category := c.Query("category"); category != "" {
		filtered := make([]catalog.Product, 0)
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(fiber.Map{"products": products})
}

// GetProduct returns a single product by id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product := catalog.Find(c.Params("id"))
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{"product": product})
}
