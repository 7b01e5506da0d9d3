package web

import (
	"context"
	"net/http"
	"time"

	"medistore/admin"
	"medistore/backend"
	"medistore/cart"
	"medistore/models"
	"medistore/orders"
	"medistore/products"
	"medistore/seller"
	"medistore/session"
	"medistore/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	R        *Renderer
	Sessions *session.Resolver
	Products *products.Service
	Cart     *cart.Service
	Orders   *orders.Service
	Admin    *admin.Service
	Seller   *seller.Service
}

// base resolves the session at most once per render: guarded routes have
// already resolved it into the request context.
func (h *Handler) base(r *http.Request, title string) Base {
	user, signedIn, resolved := session.FromContext(r.Context())
	if !resolved {
		user, signedIn = h.Sessions.Resolve(r)
	}
	return Base{
		Title:    title,
		User:     user,
		SignedIn: signedIn,
		Path:     r.URL.Path,
	}
}

func pageCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

// Home renders the storefront landing page with the first catalog page as
// featured products.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	res := h.Products.List(ctx, backend.CookieHeader(r), products.ListParams{
		Page:      1,
		SortBy:    "createdAt",
		SortOrder: "desc",
	})

	data := struct {
		Base
		Products []models.Product
	}{Base: h.base(r, "MediStore"), Products: res.Products}
	if res.Err != nil {
		data.Error = res.Err.Message
	}
	h.R.Render(w, "home", data)
}

type productListData struct {
	Base
	Products   []models.Product
	Pagination *models.Pagination
	Params     products.ListParams
}

// ProductList renders /all-medicine with search, filters and pagination.
func (h *Handler) ProductList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	q := r.URL.Query()
	params := products.ListParams{
		Search:       q.Get("search"),
		Manufacturer: q.Get("manufacturer"),
		DosageForm:   q.Get("dosageForm"),
		Page:         utils.QueryInt(r, "page", 1),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
	}
	if params.SortBy == "" {
		params.SortBy = "createdAt"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}

	res := h.Products.List(ctx, backend.CookieHeader(r), params)

	data := productListData{
		Base:       h.base(r, "All Products"),
		Products:   res.Products,
		Pagination: res.Pagination,
		Params:     params,
	}
	if res.Err != nil {
		data.Error = res.Err.Message
	}
	h.R.Render(w, "products", data)
}

// ProductDetail renders one medicine with the add-to-cart button.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	p, err := h.Products.ByID(ctx, backend.CookieHeader(r), ps.ByName("id"))

	data := struct {
		Base
		Product models.Product
	}{Base: h.base(r, "Product"), Product: p}
	if err != nil {
		data.Error = err.Message
	} else {
		data.Title = p.Name
	}
	h.R.Render(w, "product_detail", data)
}

type cartPageData struct {
	Base
	Cart        models.Cart
	Subtotal    float64
	ShippingFee float64
	Total       float64
}

// CartPage renders the cart panel with steppers and the checkout summary.
func (h *Handler) CartPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	c := h.Cart.Me(ctx, backend.CookieHeader(r))

	data := cartPageData{
		Base:     h.base(r, "Your Cart"),
		Cart:     c,
		Subtotal: c.Subtotal(),
	}
	if len(c.Items) > 0 {
		data.ShippingFee = 50
	}
	data.Total = data.Subtotal + data.ShippingFee
	h.R.Render(w, "cart", data)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "login", h.base(r, "Login"))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "register", h.base(r, "Create Account"))
}
