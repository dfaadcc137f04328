package handlers

import (
	"fmt"
	"log"
	"time"

	"lumeno/internal/models"
	"lumeno/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommerceHandler handles HTTP requests for carts, orders, and bookings.
type CommerceHandler struct {
	commerceService *services.CommerceService
	validate        *validator.Validate
}

// NewCommerceHandler creates a new CommerceHandler.
func NewCommerceHandler(commerceService *services.CommerceService) *CommerceHandler {
	return &CommerceHandler{
		commerceService: commerceService,
		validate:        validator.New(),
	}
}

// RegisterProtectedRoutes registers the commerce routes; all of them
// require an authenticated session.
func (h *CommerceHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/cart", h.HandleAddToCart)
	router.Get("/cart", h.HandleListCart)
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
	router.Post("/bookings", h.HandleCreateBooking)
}

// AddToCartRequest represents the request body for a cart add.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// HandleAddToCart puts a product into the authenticated user's cart.
func (h *CommerceHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
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

	if err := h.commerceService.AddToCart(currentUserID(c), req.ProductID, req.Quantity); err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Added to cart",
	})
}

// HandleListCart retrieves the authenticated user's cart.
func (h *CommerceHandler) HandleListCart(c *fiber.Ctx) error {
	items, err := h.commerceService.ListCart(currentUserID(c))
	if err != nil {
		log.Printf("Error listing cart: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleUpdateOrderStatus moves an order along its lifecycle.
func (h *CommerceHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	err := h.commerceService.UpdateOrderStatus(orderID, models.OrderStatus(updateData.Status))
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

// CreateBookingRequest represents the request body for a booking.
type CreateBookingRequest struct {
	ServiceID     string    `json:"service_id" validate:"required"`
	BookingDate   time.Time `json:"booking_date" validate:"required"`
	DurationHours float64   `json:"duration_hours" validate:"gte=0"`
	Notes         string    `json:"notes"`
}

// HandleCreateBooking schedules a service for the authenticated user.
func (h *CommerceHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing booking request body: %v", err)
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

	booking := models.Booking{
		ServiceID:     req.ServiceID,
		BookingDate:   req.BookingDate,
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
	}

	if err := h.commerceService.CreateBooking(currentUserID(c), &booking); err != nil {
		log.Printf("Error creating booking for service %s: %v", req.ServiceID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create booking",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}
