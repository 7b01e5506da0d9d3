package models

import "testing"

func TestToOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
	}{
		{"PENDING", OrderPending},
		{"CONFIRMED", OrderConfirmed},
		{"SHIPPED", OrderShipped},
		{"DELIVERED", OrderDelivered},
		{"CANCELLED", OrderCancelled},
		{"", OrderPending},
		{"pending", OrderPending},
		{"REFUNDED", OrderPending},
		{"garbage", OrderPending},
	}
	for _, c := range cases {
		if got := ToOrderStatus(c.in); got != c.want {
			t.Errorf("ToOrderStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCartSubtotalUsesDiscountPrice(t *testing.T) {
	discount := 8.0
	c := Cart{Items: []CartItem{
		{Quantity: 2, Product: Product{Price: 10, DiscountPrice: &discount}},
		{Quantity: 1, Product: Product{Price: 5}},
	}}
	if got := c.Subtotal(); got != 21 {
		t.Errorf("Subtotal() = %v, want 21", got)
	}
}

func TestHasDiscount(t *testing.T) {
	zero := 0.0
	tooHigh := 20.0
	valid := 5.0
	cases := []struct {
		name string
		p    Product
		want bool
	}{
		{"nil pointer", Product{Price: 10}, false},
		{"zero discount", Product{Price: 10, DiscountPrice: &zero}, false},
		{"above price", Product{Price: 10, DiscountPrice: &tooHigh}, false},
		{"valid", Product{Price: 10, DiscountPrice: &valid}, true},
	}
	for _, c := range cases {
		if got := c.p.HasDiscount(); got != c.want {
			t.Errorf("%s: HasDiscount() = %v, want %v", c.name, got, c.want)
		}
	}
}
