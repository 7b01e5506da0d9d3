package routes

import (
	"fmt"
	"net/http"

	"medistore/admin"
	"medistore/cart"
	"medistore/cartsync"
	"medistore/models"
	"medistore/orders"
	"medistore/ratelim"
	"medistore/seller"
	"medistore/session"
	"medistore/web"

	"github.com/julienschmidt/httprouter"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// AddPageRoutes registers the server-rendered storefront and dashboard pages.
// Role-specific dashboard URLs bounce non-matching roles back to /dashboard.
func AddPageRoutes(router *httprouter.Router, h *web.Handler, rl *ratelim.RateLimiter) {
	router.GET("/", h.Home)
	router.GET("/all-medicine", h.ProductList)
	router.GET("/all-medicine/:id", h.ProductDetail)
	router.GET("/cart", h.CartPage)
	router.GET("/login", h.Login)
	router.GET("/register", h.Register)

	router.GET("/dashboard", h.Dashboard)
	router.GET("/dashboard/orders", h.UserOrders)
	router.GET("/dashboard/orders/:orderId", h.UserOrderDetail)

	router.GET("/admin-dashboard", h.GuardAdmin(h.AdminOverview))
	router.GET("/admin-dashboard/users", h.GuardAdmin(h.AdminUsers))
	router.GET("/admin-dashboard/products", h.GuardAdmin(h.AdminProducts))
	router.GET("/admin-dashboard/orders", h.GuardAdmin(h.AdminOrders))
	router.GET("/admin-dashboard/ads", h.GuardAdmin(h.AdminAds))
	router.GET("/admin-dashboard/profile", h.GuardAdmin(h.AdminProfile))

	router.GET("/seller-dashboard", h.GuardSeller(h.SellerOverview))
	router.GET("/seller-dashboard/create-product", h.GuardSeller(h.SellerCreateProduct))
	router.POST("/seller-dashboard/create-product", rl.Limit(h.GuardSeller(h.SellerSubmitProduct)))
	router.GET("/seller-dashboard/my-products", h.GuardSeller(h.SellerProducts))
	router.GET("/seller-dashboard/my-products/:id", h.GuardSeller(h.SellerProductDetail))
	router.GET("/seller-dashboard/my-products/:id/edit", h.GuardSeller(h.SellerEditProduct))
	router.POST("/seller-dashboard/my-products/:id/edit", rl.Limit(h.GuardSeller(h.SellerSubmitProduct)))
	router.GET("/seller-dashboard/orders", h.GuardSeller(h.SellerOrders))
	router.GET("/seller-dashboard/orders/:id", h.GuardSeller(h.SellerOrderDetail))
	router.GET("/seller-dashboard/payments", h.GuardSeller(h.SellerPayments))
}

// AddAuthRoutes proxies the identity provider's email endpoints so its
// Set-Cookie lands on this origin.
func AddAuthRoutes(router *httprouter.Router, sessions *session.Resolver, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/sign-in/email", rl.Limit(sessions.SignIn))
	router.POST("/api/auth/sign-up/email", rl.Limit(sessions.SignUp))
	router.POST("/api/auth/sign-out", sessions.SignOut)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/cart/me", h.GetCart)
	router.POST("/api/cart/add", rl.Limit(h.AddToCart))
	router.PATCH("/api/cart/item/:id", rl.Limit(h.UpdateItem))
	router.DELETE("/api/cart/item/:id", rl.Limit(h.RemoveItem))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/order/checkout", rl.Limit(h.Checkout))
}

func AddAdminRoutes(router *httprouter.Router, h *admin.Handler, sessions *session.Resolver, rl *ratelim.RateLimiter) {
	adminOnly := func(next httprouter.Handle) httprouter.Handle {
		return rl.Limit(sessions.RequireRole(next, models.RoleAdmin))
	}
	router.PATCH("/api/admin/users/:id/role", adminOnly(h.UpdateUserRole))
	router.PATCH("/api/admin/users/:id/block", adminOnly(h.BlockOrUnblockUser))
	router.DELETE("/api/admin/users/:id", adminOnly(h.DeleteUser))
	router.PATCH("/api/admin/products/:id/status", adminOnly(h.UpdateProductStatus))
	router.DELETE("/api/admin/products/:id", adminOnly(h.DeleteProduct))
	router.PATCH("/api/admin/orders/:id/status", adminOnly(h.UpdateOrderStatus))
}

func AddSellerRoutes(router *httprouter.Router, h *seller.Handler, sessions *session.Resolver, rl *ratelim.RateLimiter) {
	sellerOnly := func(next httprouter.Handle) httprouter.Handle {
		return rl.Limit(sessions.RequireRole(next, models.RoleSeller))
	}
	router.POST("/api/seller/medicines", sellerOnly(h.CreateProduct))
	router.PATCH("/api/seller/medicines/:id", sellerOnly(h.UpdateProduct))
	router.DELETE("/api/seller/medicines/:id", sellerOnly(h.DeleteProduct))
	router.PATCH("/api/seller/orders/:id", sellerOnly(h.UpdateOrderStatus))
}

// AddCartSyncRoutes wires the cart badge websocket.
func AddCartSyncRoutes(router *httprouter.Router, hub *cartsync.Hub) {
	router.GET("/ws/cart", cartsync.ServeWS(hub))
}
