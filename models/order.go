package models

import "time"

// CartItem is a product line in a cart: the full product data plus the
// chosen quantity. Fractional quantities are allowed for kg/L units.
type CartItem struct {
	Product
	Quantity float64 `json:"quantity"`
}

// LineTotal is the discounted price of the line.
func (c CartItem) LineTotal() float64 {
	return c.EffectivePrice() * c.Quantity
}

type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order Placed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStatusSequence is the strict linear lifecycle every order walks.
var OrderStatusSequence = []OrderStatus{
	StatusOrderPlaced,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// NextStatus returns the stage after the given one and whether one exists.
// Delivered is terminal.
func NextStatus(status OrderStatus) (OrderStatus, bool) {
	for i, s := range OrderStatusSequence {
		if s == status && i < len(OrderStatusSequence)-1 {
			return OrderStatusSequence[i+1], true
		}
	}
	return status, false
}

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

type UpiMode string

const (
	UpiModeQR UpiMode = "qr"
	UpiModeID UpiMode = "id"
)

// Order is one vendor's share of a checkout. A single checkout produces one
// order per distinct vendor location in the cart. Items are snapshot copies,
// not live references; everything except Status is immutable after placement.
type Order struct {
	ID                 string         `json:"id"`
	Items              []CartItem     `json:"items"`
	Total              float64        `json:"total"`
	CustomerName       string         `json:"customer_name"`
	CustomerAddress    string         `json:"customer_address"`
	CustomerLocation   *Location      `json:"customer_location"`
	VendorLocation     Location       `json:"vendor_location"`
	VendorLocationName VendorLocation `json:"vendor_location_name"`
	PaymentMethod      PaymentMethod  `json:"payment_method"`
	UpiMode            UpiMode        `json:"upi_mode,omitempty"`
	UpiID              string         `json:"upi_id,omitempty"`
	Status             OrderStatus    `json:"status"`
	Timestamp          time.Time      `json:"timestamp"`
	StatusUpdatedAt    time.Time      `json:"status_updated_at"`
}
