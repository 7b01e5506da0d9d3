package models

type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
)

// Product is a view projection of a backend medicine record.
type Product struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	Description       string        `json:"description,omitempty"`
	Manufacturer      string        `json:"manufacturer,omitempty"`
	DosageForm        string        `json:"dosageForm,omitempty"`
	Strength          string        `json:"strength,omitempty"`
	PackSize          string        `json:"packSize,omitempty"`
	Price             float64       `json:"price"`
	DiscountPrice     *float64      `json:"discountPrice,omitempty"`
	Stock             int           `json:"stock"`
	LowStockThreshold int           `json:"lowStockThreshold"`
	Image             string        `json:"image,omitempty"`
	Images            []string      `json:"images"`
	Status            ProductStatus `json:"status"`
	SellerID          string        `json:"sellerId"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// HasDiscount guards the strike-through price display. discountPrice < price
// is a backend invariant, not re-validated here.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductInput is the create/update payload for seller medicines.
type ProductInput struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Manufacturer      string   `json:"manufacturer,omitempty"`
	DosageForm        string   `json:"dosageForm,omitempty"`
	Strength          string   `json:"strength,omitempty"`
	PackSize          string   `json:"packSize,omitempty"`
	Price             float64  `json:"price"`
	DiscountPrice     *float64 `json:"discountPrice"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Image             string   `json:"image,omitempty"`
	Images            []string `json:"images"`
	Status            string   `json:"status,omitempty"`
}
