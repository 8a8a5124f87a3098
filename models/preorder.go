package models

type PreOrderStatus string

const (
	PreOrderPending  PreOrderStatus = "pending"
	PreOrderAccepted PreOrderStatus = "accepted"
	PreOrderRejected PreOrderStatus = "rejected"
)

// PreOrderItem is a customer request to reserve a product, subject to a
// vendor accept/reject decision. At most one exists per
// (ProductID, CustomerName) pair.
type PreOrderItem struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"product_id"`
	ProductName    string         `json:"product_name"`
	CustomerName   string         `json:"customer_name"`
	VendorLocation VendorLocation `json:"vendor_location"`
	Status         PreOrderStatus `json:"status"`
}

// FavoriteItem is a pure (product, customer) relation with no extra data.
type FavoriteItem struct {
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
}
