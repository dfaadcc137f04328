package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle label of an order. Transitions are checked:
// pending -> confirmed -> shipped -> delivered, with cancellation allowed
// until the order ships. Delivered and cancelled are terminal.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order links a buyer profile and a seller profile to exactly one of a
// product or a service.
type Order struct {
	ID                string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID           string      `json:"buyer_id" gorm:"index;type:varchar(36)"`
	SellerID          string      `json:"seller_id" gorm:"index;type:varchar(36)"`
	ProductID         string      `json:"product_id,omitempty" gorm:"type:varchar(36)"`
	ServiceID         string      `json:"service_id,omitempty" gorm:"type:varchar(36)"`
	Quantity          int         `json:"quantity"`
	TotalAmount       float64     `json:"total_amount"`
	Status            OrderStatus `json:"status" gorm:"type:varchar(20);default:pending"`
	TrackingStatus    string      `json:"tracking_status"`
	TrackingNotes     string      `json:"tracking_notes"`
	DeliveryAddress   string      `json:"delivery_address"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time  `json:"delivered_at,omitempty"`
	gorm.Model                    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OrderWithBuyer is the read model for seller-facing order lists, carrying
// the buyer's display name resolved in a single joined query.
type OrderWithBuyer struct {
	Order
	BuyerName string `json:"buyer_name"`
}
