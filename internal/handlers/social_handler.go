package handlers

import (
	"fmt"
	"log"

	"lumeno/internal/models"
	"lumeno/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SocialHandler handles HTTP requests for seller follows and reviews.
type SocialHandler struct {
	socialService *services.SocialService
	validate      *validator.Validate
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the public social routes with the Fiber app.
func (h *SocialHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/sellers/:id/reviews", h.HandleListReviews)
}

// RegisterProtectedRoutes registers the session-scoped social routes.
func (h *SocialHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/sellers/:id/follow", h.HandleToggleFollow)
	router.Post("/reviews", h.HandleCreateReview)
}

// HandleToggleFollow flips the follow edge between the authenticated user
// and a seller, answering with the new state.
func (h *SocialHandler) HandleToggleFollow(c *fiber.Ctx) error {
	sellerID := c.Params("id")
	following, err := h.socialService.ToggleFollow(currentUserID(c), sellerID)
	if err != nil {
		log.Printf("Error toggling follow for seller %s: %v", sellerID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update follow state",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}

// HandleListReviews retrieves a seller's reviews newest-first.
func (h *SocialHandler) HandleListReviews(c *fiber.Ctx) error {
	sellerID := c.Params("id")
	reviews, err := h.socialService.ListReviews(sellerID)
	if err != nil {
		log.Printf("Error listing reviews for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// CreateReviewRequest represents the request body for a review.
type CreateReviewRequest struct {
	SellerID  string   `json:"seller_id" validate:"required"`
	ProductID string   `json:"product_id"`
	ServiceID string   `json:"service_id"`
	OrderID   string   `json:"order_id"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment" validate:"omitempty,max=2000"`
	Images    []string `json:"images"`
}

// HandleCreateReview records feedback about a seller from the authenticated
// user.
func (h *SocialHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	review := models.Review{
		SellerID:  req.SellerID,
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    req.Images,
	}

	if err := h.socialService.CreateReview(currentUserID(c), &review); err != nil {
		log.Printf("Error creating review for seller %s: %v", req.SellerID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
