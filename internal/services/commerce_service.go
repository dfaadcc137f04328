package services

import (
	"encoding/json"
	"fmt"
	"log"

	"lumeno/internal/models"
	"lumeno/internal/repositories"

	"lumeno/pkg/rabbitmq"
)

// CommerceService handles business logic for carts, orders, and bookings.
type CommerceService struct {
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	bookingRepo repositories.BookingRepository
	productRepo repositories.ProductRepository
	serviceRepo repositories.ServiceRepository
	mqClient    *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewCommerceService creates a new CommerceService.
func NewCommerceService(cartRepo repositories.CartRepository, orderRepo repositories.OrderRepository, bookingRepo repositories.BookingRepository, productRepo repositories.ProductRepository, serviceRepo repositories.ServiceRepository, mqClient *rabbitmq.Client) *CommerceService {
	return &CommerceService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		mqClient:    mqClient,
	}
}

// AddToCart puts a quantity of a product into the user's cart. Adding the
// same product again accumulates the quantity onto the existing row.
func (s *CommerceService) AddToCart(userID, productID string, quantity int) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.AddOrIncrement(&item); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}

// ListCart retrieves the user's cart with product display fields.
func (s *CommerceService) ListCart(userID string) ([]models.CartItemWithProduct, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.cartRepo.ListByUser(userID)
}

// ListOrdersForSeller retrieves a seller's orders with buyer display names.
func (s *CommerceService) ListOrdersForSeller(sellerID string) ([]models.OrderWithBuyer, error) {
	return s.orderRepo.ListBySeller(sellerID)
}

// UpdateOrderStatus moves an order along its lifecycle. Transitions that
// skip a step or leave a terminal state fail with ErrInvalidTransition. The
// tracking status mirrors the new status, and a status-change event is
// published best-effort.
func (s *CommerceService) UpdateOrderStatus(orderID string, next models.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("unknown order status %q: %w", next, ErrInvalidTransition)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("order %s cannot move from %s to %s: %w", orderID, order.Status, next, ErrInvalidTransition)
	}

	if err := s.orderRepo.UpdateStatus(orderID, next); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}

	s.publishEvent("order.status_changed", map[string]interface{}{
		"orderID":  orderID,
		"sellerID": order.SellerID,
		"buyerID":  order.BuyerID,
		"from":     order.Status,
		"to":       next,
	})

	return nil
}

// CreateBooking schedules a service for a client. The total amount follows
// the service's pricing variant: hourly rate times duration, the flat price,
// or zero for negotiable pricing.
func (s *CommerceService) CreateBooking(userID string, booking *models.Booking) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	service, err := s.serviceRepo.GetByID(booking.ServiceID)
	if err != nil {
		return err
	}

	booking.UserID = userID
	booking.ProviderID = service.ProviderID
	switch service.PricingType {
	case models.PricingHourly:
		booking.TotalAmount = service.PricePerHour * booking.DurationHours
	case models.PricingFixed:
		booking.TotalAmount = service.FixedPrice
	default:
		booking.TotalAmount = 0 // negotiated off-platform
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent("booking.created", map[string]interface{}{
		"bookingID":  booking.ID,
		"serviceID":  booking.ServiceID,
		"providerID": booking.ProviderID,
		"userID":     booking.UserID,
		"total":      booking.TotalAmount,
	})

	return nil
}

// ListBookingsForProvider retrieves a provider's bookings with client names
// and service titles.
func (s *CommerceService) ListBookingsForProvider(providerID string) ([]models.BookingWithDetails, error) {
	return s.bookingRepo.ListByProvider(providerID)
}

// publishEvent sends a marketplace event best-effort; failures are logged
// and never surface to the caller.
func (s *CommerceService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
