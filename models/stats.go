package models

// DashboardOverview backs the seller overview page.
type DashboardOverview struct {
	TotalProducts      int             `json:"totalProducts"`
	InStockProducts    int             `json:"inStockProducts"`
	OutOfStockProducts int             `json:"outOfStockProducts"`
	DiscountedProducts int             `json:"discountedProducts"`
	RecentProducts     []RecentProduct `json:"recentProducts"`
}

type RecentProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	CreatedAt string  `json:"createdAt"`
}

// OverviewStats backs the admin overview page.
type OverviewStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalSellers  int     `json:"totalSellers"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type MonthlySales struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
