package models

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ToOrderStatus coerces an arbitrary backend string to a known status.
// Unknown values fall back to PENDING; total over all inputs.
func ToOrderStatus(value string) OrderStatus {
	switch OrderStatus(value) {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(value)
	}
	return OrderPending
}

// OrderStatuses lists the valid states for status dropdowns.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled,
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId,omitempty"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	DiscountAmount  float64         `json:"discountAmount"`
	ShippingFee     float64         `json:"shippingFee"`
	FinalAmount     float64         `json:"finalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       string          `json:"createdAt,omitempty"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status,omitempty"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	District     string `json:"district,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Label        string `json:"label,omitempty"`
}
