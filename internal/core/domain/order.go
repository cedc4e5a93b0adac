package domain

import "time"

// OrderStatus represents the lifecycle state of a delivery order. The
// backend that accepts orders owns the transitions; this application only
// displays them, but the table below is still the authority for which
// histories are well-formed.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
// delivered and cancelled are terminal.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderPreparing, OrderCancelled},
	OrderPreparing:  {OrderDelivering, OrderCancelled},
	OrderDelivering: {OrderDelivered, OrderCancelled},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(validOrderTransitions[s]) == 0
}

// Label returns the Arabic display label. Anything unrecognised renders as
// cancelled, the catch-all the storefront has always used.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "قيد الانتظار"
	case OrderConfirmed:
		return "مؤكد"
	case OrderPreparing:
		return "قيد التحضير"
	case OrderDelivering:
		return "قيد التوصيل"
	case OrderDelivered:
		return "تم التوصيل"
	default:
		return "ملغي"
	}
}

// BadgeVariant maps a status to the badge style the front-end renders:
// delivered is highlighted, cancelled is destructive, everything in
// between is neutral.
func (s OrderStatus) BadgeVariant() string {
	switch s {
	case OrderDelivered:
		return "default"
	case OrderCancelled:
		return "destructive"
	default:
		return "secondary"
	}
}

// Order is a delivery order placed by a customer at a store. StoreName is
// resolved by the repository join.
type Order struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	CustomerID      string      `json:"customer_id" bson:"customer_id"`
	StoreID         string      `json:"store_id" bson:"store_id"`
	StoreName       string      `json:"store_name,omitempty" bson:"store_name,omitempty"`
	DeliveryAddress string      `json:"delivery_address" bson:"delivery_address"`
	TotalAmount     float64     `json:"total_amount" bson:"total_amount"`
	Status          OrderStatus `json:"status" bson:"status"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}
