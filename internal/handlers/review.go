package handlers

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/middleware"
	"github.com/example/jhelumkesar/internal/models"
	"github.com/example/jhelumkesar/internal/store"
)

// ReviewHandler manages product review endpoints.
type ReviewHandler struct {
	store *store.Store
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(st *store.Store) *ReviewHandler {
	return &ReviewHandler{store: st}
}

// ListForProduct returns a product's visible reviews, newest first, with the
// average rating rounded to one decimal.
func (h *ReviewHandler) ListForProduct(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product ID is required")
	}

	reviews, err := h.store.Reviews()
	if err != nil {
		return err
	}

	visible := make([]models.Review, 0)
	for _, r := range reviews {
		if r.ProductID == productID && !r.Hidden() {
			visible = append(visible, r)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	var average float64
	if len(visible) > 0 {
		var sum int
		for _, r := range visible {
			sum += r.Rating
		}
		average = math.Round(float64(sum)/float64(len(visible))*10) / 10
	}

	return c.JSON(fiber.Map{
		"reviews":       visible,
		"averageRating": average,
		"totalReviews":  len(visible),
	})
}

type createReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

// Create submits a review. One review per user per product; the verified
// flag is derived once from the author's non-cancelled purchases.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.ProductID == "" || req.Rating == 0 || strings.TrimSpace(req.Comment) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product ID, rating, and comment are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	reviews, err := h.store.Reviews()
	if err != nil {
		return err
	}
	for _, r := range reviews {
		if r.ProductID == req.ProductID && r.UserID == claims.ID {
			return fiber.NewError(fiber.StatusBadRequest, "you have already reviewed this product")
		}
	}

	orders, err := h.store.Orders()
	if err != nil {
		return err
	}
	verified := false
	for _, o := range orders {
		if o.UserID == claims.ID && o.Status != models.StatusCancelled && o.Contains(req.ProductID) {
			verified = true
			break
		}
	}

	review := models.Review{
		ID:        models.NewReviewID(),
		ProductID: req.ProductID,
		UserID:    claims.ID,
		UserName:  claims.Name,
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC(),
		Verified:  &verified,
	}

	reviews = append(reviews, review)
	if err := h.store.SaveReviews(reviews); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted successfully",
		"review":  review,
	})
}

type updateReviewRequest struct {
	Rating  int     `json:"rating"`
	Title   *string `json:"title"`
	Comment string  `json:"comment"`
}

// findOwnReview locates a review and enforces that the caller authored it.
func (h *ReviewHandler) findOwnReview(c *fiber.Ctx) ([]models.Review, *models.Review, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	reviews, err := h.store.Reviews()
	if err != nil {
		return nil, nil, err
	}
	for i := range reviews {
		if reviews[i].ID == c.Params("id") {
			if reviews[i].UserID != claims.ID {
				return nil, nil, fiber.NewError(fiber.StatusForbidden, "unauthorized")
			}
			return reviews, &reviews[i], nil
		}
	}
	return nil, nil, fiber.NewError(fiber.StatusNotFound, "review not found")
}

// Update edits the caller's own review.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var req updateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	reviews, review, err := h.findOwnReview(c)
	if err != nil {
		return err
	}

	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		review.Rating = req.Rating
	}
	if req.Title != nil {
		review.Title = strings.TrimSpace(*req.Title)
	}
	if strings.TrimSpace(req.Comment) != "" {
		review.Comment = strings.TrimSpace(req.Comment)
	}
	now := time.Now().UTC()
	review.UpdatedAt = &now

	if err := h.store.SaveReviews(reviews); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully",
		"review":  *review,
	})
}

// Delete removes the caller's own review.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	reviews, review, err := h.findOwnReview(c)
	if err != nil {
		return err
	}

	remaining := make([]models.Review, 0, len(reviews)-1)
	for _, r := range reviews {
		if r.ID != review.ID {
			remaining = append(remaining, r)
		}
	}
	if err := h.store.SaveReviews(remaining); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
