// Package navigation holds the static role → sidebar mapping. Pure data,
// no runtime mutation.
package navigation

import "medistore/models"

type RouteItem struct {
	Title string
	URL   string
	Icon  string
}

type RouteGroup struct {
	Title string
	Items []RouteItem
}

var adminRoutes = []RouteGroup{
	{
		Title: "Admin",
		Items: []RouteItem{
			{Title: "Overview", URL: "/admin-dashboard", Icon: "layout-dashboard"},
			{Title: "Manage Users", URL: "/admin-dashboard/users", Icon: "users"},
			{Title: "Manage Products", URL: "/admin-dashboard/products", Icon: "package"},
			{Title: "Manage Orders", URL: "/admin-dashboard/orders", Icon: "clipboard-list"},
			{Title: "Advertisements", URL: "/admin-dashboard/ads", Icon: "megaphone"},
		},
	},
}

var sellerRoutes = []RouteGroup{
	{
		Title: "Seller",
		Items: []RouteItem{
			{Title: "Overview", URL: "/seller-dashboard", Icon: "layout-dashboard"},
			{Title: "Add Product", URL: "/seller-dashboard/create-product", Icon: "plus-circle"},
			{Title: "My Products", URL: "/seller-dashboard/my-products", Icon: "package"},
			{Title: "Orders", URL: "/seller-dashboard/orders", Icon: "clipboard-list"},
			{Title: "Payments", URL: "/seller-dashboard/payments", Icon: "badge-dollar-sign"},
		},
	},
}

var userRoutes = []RouteGroup{
	{
		Title: "User",
		Items: []RouteItem{
			{Title: "Overview", URL: "/dashboard", Icon: "layout-dashboard"},
			{Title: "My Orders", URL: "/dashboard/orders", Icon: "shopping-cart"},
			{Title: "Cart", URL: "/cart", Icon: "shopping-cart"},
		},
	},
}

// RoutesForRole maps a role to its sidebar groups. Unknown roles get an
// empty sidebar, never an error.
func RoutesForRole(role models.Role) []RouteGroup {
	switch role {
	case models.RoleAdmin:
		return adminRoutes
	case models.RoleSeller:
		return sellerRoutes
	case models.RoleUser:
		return userRoutes
	}
	return nil
}
