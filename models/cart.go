package models

// Cart is entirely server-held; add/update/remove are round trips to the
// backend with no local reconciliation.
type Cart struct {
	ID         string     `json:"id,omitempty"`
	UserID     string     `json:"userId,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
}

type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// EmptyCart is what an unauthenticated cart lookup resolves to.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

func (c Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		price := it.Product.Price
		if it.Product.HasDiscount() {
			price = *it.Product.DiscountPrice
		}
		total += price * float64(it.Quantity)
	}
	return total
}
